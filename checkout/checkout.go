// Package checkout turns a non-empty cart into a persisted order and runs
// the side effects that follow: stock decrement and receipt notification.
package checkout

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ssaiyajin/Bottle-Crate-Store/cart"
	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
	"github.com/Ssaiyajin/Bottle-Crate-Store/notify"
)

// Catalog looks up products and adjusts stock. FindProduct returns (nil, nil)
// for an unknown id; errors mean the store itself failed.
type Catalog interface {
	FindProduct(id uint) (*models.Product, error)
	SetStock(id uint, quantity int) error
}

// Orders persists and retrieves orders. SaveOrder assigns the id.
type Orders interface {
	SaveOrder(o *models.Order) error
	FindOrder(id uint) (*models.Order, error)
}

// Notifier hands the order summary to the receipt collaborator. A failure
// here never aborts a checkout.
type Notifier interface {
	Send(p notify.Payload) error
}

// Recoverable precondition failures, surfaced to the user rather than
// treated as faults.
var (
	ErrNotLoggedIn = errors.New("please log in")
	ErrCartEmpty   = errors.New("shopping cart is empty")
)

type Service struct {
	catalog  Catalog
	orders   Orders
	notifier Notifier
}

func NewService(catalog Catalog, orders Orders, notifier Notifier) *Service {
	return &Service{catalog: catalog, orders: orders, notifier: notifier}
}

// PlaceOrder converts the cart lines into a persisted order for the customer.
// Line prices are recomputed from current catalog data, not copied from the
// cart, so stale cart pricing can't leak into an order. After the order is
// durably recorded, stock is decremented per line (floored at zero) and the
// receipt function is notified; both are best-effort and independent, and
// neither can roll the order back.
func (s *Service) PlaceOrder(customer *models.User, lines []cart.LineItem) (*models.Order, error) {
	if customer == nil {
		return nil, ErrNotLoggedIn
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		Reference: time.Now().Format("20060102150405") + "-" + uuid.NewString(),
		Username:  customer.Username,
	}

	type stockAdjustment struct {
		productID uint
		remaining int
	}
	var adjustments []stockAdjustment

	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}

		unitPrice := line.UnitPrice
		name := line.Name
		picture := line.Picture

		product, err := s.catalog.FindProduct(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			unitPrice = product.Price
			name = product.Name
			picture = product.Picture
			adjustments = append(adjustments, stockAdjustment{
				productID: product.ID,
				remaining: product.Stock - line.Quantity,
			})
		}

		price := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      name,
			Picture:   picture,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
			Price:     price,
		})
		total = total.Add(price)
	}
	if len(order.Items) == 0 {
		return nil, ErrCartEmpty
	}
	order.TotalPrice = total

	if err := s.orders.SaveOrder(order); err != nil {
		return nil, err
	}

	// Best effort, per line: one failed decrement neither rolls the order
	// back nor blocks the remaining lines. SetStock clamps below zero.
	for _, adj := range adjustments {
		if err := s.catalog.SetStock(adj.productID, adj.remaining); err != nil {
			log.Printf("⚠️ Stock update failed for product %d: %v", adj.productID, err)
		}
	}

	if err := s.notifier.Send(s.buildPayload(order, customer)); err != nil {
		log.Printf("⚠️ Receipt notification failed for order %d: %v", order.ID, err)
	}

	return order, nil
}

func (s *Service) buildPayload(order *models.Order, customer *models.User) notify.Payload {
	items := make([]notify.LineEntry, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, notify.LineEntry{
			Price:     it.Price,
			Quantity:  it.Quantity,
			Name:      it.Name,
			Picture:   it.Picture,
			ProductID: it.ProductID,
		})
	}

	postalCode := ""
	if len(customer.DeliveryAddresses) > 0 {
		postalCode = customer.DeliveryAddresses[0].PostalCode
	}

	return notify.Payload{
		ID:          order.ID,
		TotalPrice:  order.TotalPrice,
		ListOfItems: items,
		UserEmail:   customer.Email,
		PostalCode:  postalCode,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}
