package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/cart"
	"github.com/Ssaiyajin/Bottle-Crate-Store/checkout"
	"github.com/Ssaiyajin/Bottle-Crate-Store/middleware"
	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
	"github.com/Ssaiyajin/Bottle-Crate-Store/store"
)

// POST /user/checkout
func Checkout(db *gorm.DB, carts *cart.Store, svc *checkout.Service) gin.HandlerFunc {
	users := store.NewUserStore(db)
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in."})
			return
		}

		customer, err := users.Find(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if customer == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in."})
			return
		}

		userCart := carts.For(userID)
		order, err := svc.PlaceOrder(customer, userCart.Items())
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrNotLoggedIn):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, checkout.ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			}
			return
		}

		userCart.Clear()
		BroadcastOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"order_id": order.ID,
			"total":    order.TotalPrice,
			"redirect": "/orders/" + strconv.FormatUint(uint64(order.ID), 10),
		})
	}
}

// GET /user/orders — admins see every order, customers only their own.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	orders := store.NewOrderStore(db)
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in."})
			return
		}

		role, _ := c.Get("role")
		var (
			list []models.Order
			err  error
		)
		if role == models.RoleAdmin {
			list, err = orders.FindAllOrders()
		} else {
			list, err = orders.FindOrdersByUser(userID)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /user/orders/:order_id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	orders := store.NewOrderStore(db)
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in."})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := orders.FindOrder(uint(orderID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "The requested order does not exist"})
			return
		}

		role, _ := c.Get("role")
		if role != models.RoleAdmin && order.Username != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "The requested order doesn't belong to the logged in user"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
