package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Ssaiyajin/Bottle-Crate-Store/controllers/order"
	productControllers "github.com/Ssaiyajin/Bottle-Crate-Store/controllers/product"
	"github.com/Ssaiyajin/Bottle-Crate-Store/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Catalog mutation is
// role-gated: only the ADMIN role gets through.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ──────────────── Catalog Management ────────────────
		adminGroup.POST("/products/bottles", productControllers.CreateBottle(db)) // POST /admin/products/bottles
		adminGroup.POST("/products/crates", productControllers.CreateCrate(db))   // POST /admin/products/crates
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))     // PUT /admin/products/:id
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))  // DELETE /admin/products/:id
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db)) // GET /admin/products/export

		// ──────────────── Live Order Feed ────────────────
		adminGroup.GET("/orders/feed", orderControllers.OrderFeedHandler) // GET /admin/orders/feed
	}
}
