package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// SaveOrder persists the order and its items in one transaction. GORM
// assigns the id.
func (s *OrderStore) SaveOrder(o *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

// FindOrder returns (nil, nil) when the id is unknown.
func (s *OrderStore) FindOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// FindOrdersByUser lists a customer's orders, newest first.
func (s *OrderStore) FindOrdersByUser(username string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// FindAllOrders lists every order, newest first. Admin only.
func (s *OrderStore) FindAllOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}
