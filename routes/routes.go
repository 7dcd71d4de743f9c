package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/cart"
	"github.com/Ssaiyajin/Bottle-Crate-Store/checkout"
)

// SetupRoutes is the single entry point that wires up the auth, user, and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store, svc *checkout.Service) {
	SetupAuthRoutes(r, db)
	SetupUserRoutes(r, db, carts, svc)
	SetupAdminRoutes(r, db)
}
