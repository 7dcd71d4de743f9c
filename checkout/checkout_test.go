package checkout

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ssaiyajin/Bottle-Crate-Store/cart"
	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
	"github.com/Ssaiyajin/Bottle-Crate-Store/notify"
)

type fakeCatalog struct {
	products map[uint]*models.Product
	findErr  error
	stockErr map[uint]error
}

func (f *fakeCatalog) FindProduct(id uint) (*models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.products[id], nil
}

func (f *fakeCatalog) SetStock(id uint, quantity int) error {
	if err := f.stockErr[id]; err != nil {
		return err
	}
	p, ok := f.products[id]
	if !ok {
		return nil
	}
	if quantity < 0 {
		quantity = 0
	}
	p.Stock = quantity
	return nil
}

type fakeOrders struct {
	saved   []*models.Order
	saveErr error
}

func (f *fakeOrders) SaveOrder(o *models.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	o.ID = uint(len(f.saved) + 1)
	f.saved = append(f.saved, o)
	return nil
}

func (f *fakeOrders) FindOrder(id uint) (*models.Order, error) {
	for _, o := range f.saved {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

type fakeNotifier struct {
	payloads []notify.Payload
	err      error
}

func (f *fakeNotifier) Send(p notify.Payload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, p)
	return nil
}

func product(id uint, price string, stock int) *models.Product {
	return &models.Product{
		ID:    id,
		Kind:  models.KindBottle,
		Name:  "Bottle",
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func line(id uint, price string, qty int) cart.LineItem {
	unit := decimal.RequireFromString(price)
	return cart.LineItem{
		ProductID: id,
		Name:      "Bottle",
		UnitPrice: unit,
		Quantity:  qty,
		Price:     unit.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func customer() *models.User {
	return &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     models.RoleCustomer,
		DeliveryAddresses: []models.Address{
			{Street: "Main St", HouseNumber: "1", PostalCode: "80333"},
		},
	}
}

func newFixture() (*Service, *fakeCatalog, *fakeOrders, *fakeNotifier) {
	catalog := &fakeCatalog{
		products: map[uint]*models.Product{
			1: product(1, "0.89", 200),
			2: product(2, "18.39", 5),
		},
		stockErr: map[uint]error{},
	}
	orders := &fakeOrders{}
	notifier := &fakeNotifier{}
	return NewService(catalog, orders, notifier), catalog, orders, notifier
}

func TestPlaceOrderRequiresCustomer(t *testing.T) {
	svc, _, orders, _ := newFixture()

	_, err := svc.PlaceOrder(nil, []cart.LineItem{line(1, "0.89", 1)})

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, orders.saved)
}

func TestPlaceOrderRequiresNonEmptyCart(t *testing.T) {
	svc, _, orders, notifier := newFixture()

	_, err := svc.PlaceOrder(customer(), nil)

	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Empty(t, orders.saved)
	assert.Empty(t, notifier.payloads)
}

func TestPlaceOrderSuccess(t *testing.T) {
	svc, catalog, orders, notifier := newFixture()

	order, err := svc.PlaceOrder(customer(), []cart.LineItem{
		line(1, "0.89", 145),
		line(2, "18.39", 6),
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// 0.89*145 + 18.39*6 = 239.39
	assert.True(t, decimal.RequireFromString("239.39").Equal(order.TotalPrice),
		"total = %s", order.TotalPrice)
	require.Len(t, order.Items, 2)
	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.Reference)
	assert.Equal(t, "alice", order.Username)
	require.Len(t, orders.saved, 1)

	// Stock decremented per line; the second product oversold and clamps.
	assert.Equal(t, 55, catalog.products[1].Stock)
	assert.Equal(t, 0, catalog.products[2].Stock)

	// Notification payload carries both lines and the customer details.
	require.Len(t, notifier.payloads, 1)
	payload := notifier.payloads[0]
	assert.Equal(t, order.ID, payload.ID)
	assert.Len(t, payload.ListOfItems, 2)
	assert.Equal(t, "alice@example.com", payload.UserEmail)
	assert.Equal(t, "80333", payload.PostalCode)
	_, parseErr := time.Parse(time.RFC3339, payload.Timestamp)
	assert.NoError(t, parseErr)
}

func TestPlaceOrderRecomputesPricesFromCatalog(t *testing.T) {
	svc, catalog, _, _ := newFixture()
	catalog.products[1].Price = decimal.RequireFromString("2.00")

	// Cart still carries the stale 0.89 unit price.
	order, err := svc.PlaceOrder(customer(), []cart.LineItem{line(1, "0.89", 3)})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("6.00").Equal(order.TotalPrice),
		"total = %s", order.TotalPrice)
	assert.True(t, decimal.RequireFromString("2.00").Equal(order.Items[0].UnitPrice))
}

func TestPlaceOrderUnknownProductKeepsSnapshot(t *testing.T) {
	svc, catalog, orders, _ := newFixture()

	order, err := svc.PlaceOrder(customer(), []cart.LineItem{line(77, "3.10", 2)})
	require.NoError(t, err)

	require.Len(t, orders.saved, 1)
	assert.True(t, decimal.RequireFromString("6.20").Equal(order.TotalPrice))
	// No catalog row means no stock adjustment either.
	assert.Equal(t, 200, catalog.products[1].Stock)
	assert.Equal(t, 5, catalog.products[2].Stock)
}

func TestPlaceOrderSkipsNonPositiveLines(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.PlaceOrder(customer(), []cart.LineItem{line(1, "0.89", 0)})

	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlaceOrderSaveFailurePropagates(t *testing.T) {
	svc, catalog, orders, notifier := newFixture()
	orders.saveErr = errors.New("db down")

	_, err := svc.PlaceOrder(customer(), []cart.LineItem{line(1, "0.89", 2)})

	assert.Error(t, err)
	assert.Equal(t, 200, catalog.products[1].Stock, "no stock change without a persisted order")
	assert.Empty(t, notifier.payloads)
}

func TestPlaceOrderNotifierFailureIsSwallowed(t *testing.T) {
	svc, _, orders, notifier := newFixture()
	notifier.err = errors.New("receipt function unreachable")

	order, err := svc.PlaceOrder(customer(), []cart.LineItem{line(1, "0.89", 2)})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Len(t, orders.saved, 1)
}

func TestPlaceOrderStockFailureDoesNotBlockRemainingLines(t *testing.T) {
	svc, catalog, _, notifier := newFixture()
	catalog.stockErr[1] = errors.New("lock timeout")

	order, err := svc.PlaceOrder(customer(), []cart.LineItem{
		line(1, "0.89", 10),
		line(2, "18.39", 2),
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 200, catalog.products[1].Stock, "failed decrement leaves stock untouched")
	assert.Equal(t, 3, catalog.products[2].Stock, "later lines still decremented")
	assert.Len(t, notifier.payloads, 1, "notification still sent")
}

func TestPlaceOrderNoDeliveryAddressOmitsPostalCode(t *testing.T) {
	svc, _, _, notifier := newFixture()
	cust := customer()
	cust.DeliveryAddresses = nil

	_, err := svc.PlaceOrder(cust, []cart.LineItem{line(1, "0.89", 1)})
	require.NoError(t, err)

	require.Len(t, notifier.payloads, 1)
	assert.Empty(t, notifier.payloads[0].PostalCode)
}
