// Package cart holds the in-memory, session-scoped shopping cart. Lines are
// keyed by product id so repeated adds merge, and insertion order is kept for
// display.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
)

// LineItem is one (product, quantity) selection. Price is always
// UnitPrice * Quantity, recomputed on every mutation.
type LineItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Picture   string          `json:"picture"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Cart serializes all mutations behind one lock. A cart belongs to exactly
// one session, so carts of different users never contend.
type Cart struct {
	mu    sync.Mutex
	lines map[uint]*LineItem
	order []uint
}

func New() *Cart {
	return &Cart{lines: make(map[uint]*LineItem)}
}

// AddItem merges quantity into an existing line for the product or appends a
// new one. Nil products and non-positive quantities are silently ignored;
// callers feed this straight from form binding and rely on the no-op.
func (c *Cart) AddItem(p *models.Product, quantity int) {
	if p == nil {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[p.ID]; ok {
		line.Quantity += quantity
		line.UnitPrice = p.Price
		line.Price = p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		return
	}
	c.lines[p.ID] = &LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Picture:   p.Picture,
		UnitPrice: p.Price,
		Quantity:  quantity,
		Price:     p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	c.order = append(c.order, p.ID)
}

// UpdateItem overwrites the quantity of an existing line. Updating a product
// that is not in the cart does nothing; a quantity of zero (or less) removes
// the line entirely. Update sets, add accumulates.
func (c *Cart) UpdateItem(p *models.Product, quantity int) {
	if p == nil {
		return
	}
	if quantity < 0 {
		quantity = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[p.ID]
	if !ok {
		return
	}
	if quantity == 0 {
		c.removeLocked(p.ID)
		return
	}
	line.Quantity = quantity
	line.UnitPrice = p.Price
	line.Price = p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// RemoveItem drops the line for the product id regardless of quantity.
func (c *Cart) RemoveItem(productID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID uint) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Items returns a snapshot of the lines in insertion order. Mutating the
// returned slice does not touch the cart.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.lines[id])
	}
	return items
}

// Total is the exact decimal sum of all line prices. Empty cart means zero.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, id := range c.order {
		total = total.Add(c.lines[id].Price)
	}
	return total
}

// Size returns the number of distinct lines.
func (c *Cart) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[uint]*LineItem)
	c.order = nil
}
