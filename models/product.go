package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type ProductKind string

const (
	KindBottle ProductKind = "bottle"
	KindCrate  ProductKind = "crate"
)

// MinPrice is the lowest price the catalog accepts for any product.
var MinPrice = decimal.RequireFromString("0.01")

// Product is the single catalog table for both beverage variants. Kind
// selects which of the variant columns are meaningful: a bottle carries
// volume, alcohol percent and supplier; a crate references a bottle and a
// bottle count.
type Product struct {
	ID      uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind    ProductKind     `gorm:"type:VARCHAR(10);not null;index" json:"kind"`
	Name    string          `gorm:"not null" json:"name"`
	Picture string          `json:"picture"`
	Price   decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"price"`
	Stock   int             `json:"stock"`

	// Bottle columns
	Volume         float64 `json:"volume,omitempty"`
	AlcoholPercent float64 `json:"alcohol_percent,omitempty"`
	Alcoholic      bool    `json:"alcoholic"`
	Supplier       string  `json:"supplier,omitempty"`

	// Crate columns
	BottleID    *uint `json:"bottle_id,omitempty"`
	BottleCount int   `json:"bottle_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrInvalidKind     = errors.New("product kind must be bottle or crate")
	ErrPriceTooLow     = errors.New("price must be at least 0.01")
	ErrNameRequired    = errors.New("name is required")
	ErrNegativeStock   = errors.New("stock can not be negative")
	ErrInvalidVolume   = errors.New("volume must be higher than 0")
	ErrInvalidPercent  = errors.New("alcohol percent must be between 0 and 100")
	ErrSupplierMissing = errors.New("supplier is required")
	ErrBottleRequired  = errors.New("crate must reference a bottle")
	ErrInvalidCount    = errors.New("bottle count must be at least 1")
)

// Validate checks the shared invariants plus the rules of the product's
// variant. The alcoholic flag is derived here, never trusted from input.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Price.LessThan(MinPrice) {
		return ErrPriceTooLow
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	switch p.Kind {
	case KindBottle:
		if p.Volume <= 0 {
			return ErrInvalidVolume
		}
		if p.AlcoholPercent < 0 || p.AlcoholPercent > 100 {
			return ErrInvalidPercent
		}
		if p.Supplier == "" {
			return ErrSupplierMissing
		}
		p.Alcoholic = p.AlcoholPercent > 0
	case KindCrate:
		if p.BottleID == nil {
			return ErrBottleRequired
		}
		if p.BottleCount < 1 {
			return ErrInvalidCount
		}
	default:
		return ErrInvalidKind
	}
	return nil
}
