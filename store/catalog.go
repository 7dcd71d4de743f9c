// Package store provides the GORM-backed implementations of the collaborator
// interfaces the checkout service depends on.
package store

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
)

type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// FindProduct returns (nil, nil) when the id is unknown.
func (s *CatalogStore) FindProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogStore) SaveProduct(p *models.Product) error {
	return s.db.Save(p).Error
}

// SetStock writes an absolute stock quantity, clamping negatives to zero.
// An unknown product id is a no-op, not an error.
func (s *CatalogStore) SetStock(id uint, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("⚠️ SetStock: product %d not found, no update performed", id)
				return nil
			}
			return err
		}
		return tx.Model(&product).Update("stock", quantity).Error
	})
}
