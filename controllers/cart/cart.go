package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/cart"
	"github.com/Ssaiyajin/Bottle-Crate-Store/middleware"
	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
)

// Quantity deliberately has no min binding: the cart engine clamps negative
// input and treats zero as a no-op on add and as removal on update.
type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GET /user/cart
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userCart := carts.For(userID)
		c.JSON(http.StatusOK, gin.H{
			"items": userCart.Items(),
			"total": userCart.Total(),
		})
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		userCart := carts.For(userID)
		userCart.AddItem(&product, input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items": userCart.Items(),
			"total": userCart.Total(),
		})
	}
}

// PUT /user/cart
func UpdateCartItem(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		userCart := carts.For(userID)
		userCart.UpdateItem(&product, input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items": userCart.Items(),
			"total": userCart.Total(),
		})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		carts.For(userID).RemoveItem(uint(productID))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		carts.For(userID).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
