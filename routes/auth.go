package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/auth"
)

// SetupAuthRoutes registers the public registration and login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db)) // POST /auth/register
		authGroup.POST("/login", auth.Login(db))       // POST /auth/login
	}
}
