package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/cart"
	"github.com/Ssaiyajin/Bottle-Crate-Store/checkout"
	cartControllers "github.com/Ssaiyajin/Bottle-Crate-Store/controllers/cart"
	orderControllers "github.com/Ssaiyajin/Bottle-Crate-Store/controllers/order"
	productControllers "github.com/Ssaiyajin/Bottle-Crate-Store/controllers/product"
	userControllers "github.com/Ssaiyajin/Bottle-Crate-Store/controllers/user"
	"github.com/Ssaiyajin/Bottle-Crate-Store/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints plus public catalog
// browsing. Requires JWT middleware on the user group.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store, svc *checkout.Service) {
	// Catalog browsing is open to everyone.
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile & Addresses ────────────────
		userGroup.GET("/", userControllers.GetProfile(db))           // GET /user/
		userGroup.PUT("/", userControllers.UpdateProfile(db))        // PUT /user/
		userGroup.PUT("/addresses", userControllers.UpdateAddresses(db)) // PUT /user/addresses

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(carts))                    // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db, carts))           // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpdateCartItem(db, carts))         // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(carts)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(carts))               // DELETE /user/cart
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(db, carts, svc)) // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetOrders(db))               // GET /user/orders
		userGroup.GET("/orders/:order_id", orderControllers.GetOrderByID(db))  // GET /user/orders/:order_id
	}
}
