package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/auth"
	"github.com/SkriptSparrow/Catalog-AGT/config"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db, cfg.JWTSecret))
		authGroup.POST("/login", auth.Login(db, cfg.JWTSecret))
	}
}
