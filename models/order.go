package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order owns its items outright: deleting an order cascades to them, and
// nothing points back from an item to its order. The total is fixed at
// checkout and never recalculated afterwards.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Reference  string          `gorm:"uniqueIndex" json:"reference"`
	Username   string          `gorm:"not null;index" json:"username"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(19,4)" json:"total_price"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderItem snapshots the product at purchase time so later catalog edits
// do not rewrite order history. Price = UnitPrice * Quantity.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   uint            `gorm:"index" json:"-"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Picture   string          `json:"picture"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(19,4)" json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(19,4)" json:"price"`
}
