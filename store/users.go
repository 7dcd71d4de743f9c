package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (s *UserStore) Exists(username string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *UserStore) Create(u *models.User) error {
	return s.db.Create(u).Error
}

// Find loads the user with addresses. Returns (nil, nil) for unknown names.
func (s *UserStore) Find(username string) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("BillingAddresses").
		Preload("DeliveryAddresses").
		First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ReplaceAddresses swaps out both address sets of the user.
func (s *UserStore) ReplaceAddresses(username string, billing, delivery []models.Address) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "username = ?", username).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("BillingAddresses").Replace(billing); err != nil {
			return err
		}
		return tx.Model(&user).Association("DeliveryAddresses").Replace(delivery)
	})
}
