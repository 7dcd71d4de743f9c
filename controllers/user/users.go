package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/auth"
	"github.com/Ssaiyajin/Bottle-Crate-Store/middleware"
	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
	"github.com/Ssaiyajin/Bottle-Crate-Store/store"
)

type UpdateProfileInput struct {
	Email *string `json:"email" binding:"omitempty,email"`
}

type UpdateAddressesInput struct {
	BillingAddresses  []auth.AddressInput `json:"billing_addresses" binding:"dive"`
	DeliveryAddresses []auth.AddressInput `json:"delivery_addresses" binding:"dive"`
}

// GET /user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.Find(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if len(updates) > 0 {
			if err := db.Model(&models.User{}).Where("username = ?", userID).
				Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
	}
}

// PUT /user/addresses
func UpdateAddresses(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateAddressesInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		billing := make([]models.Address, 0, len(input.BillingAddresses))
		for _, a := range input.BillingAddresses {
			billing = append(billing, models.Address{
				Street:      a.Street,
				HouseNumber: a.HouseNumber,
				PostalCode:  a.PostalCode,
			})
		}
		delivery := make([]models.Address, 0, len(input.DeliveryAddresses))
		for _, a := range input.DeliveryAddresses {
			delivery = append(delivery, models.Address{
				Street:      a.Street,
				HouseNumber: a.HouseNumber,
				PostalCode:  a.PostalCode,
			})
		}

		if err := users.ReplaceAddresses(userID, billing, delivery); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Addresses updated"})
	}
}
