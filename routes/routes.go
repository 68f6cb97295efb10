package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/config"
	"github.com/SkriptSparrow/Catalog-AGT/mailer"
)

// SetupRoutes is the single entry point that wires up the public storefront,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, m *mailer.Mailer) {
	SetupPublicRoutes(r, db)

	SetupAuthRoutes(r, db, cfg)

	SetupUserRoutes(r, db, cfg, m)

	SetupAdminRoutes(r, db, cfg)
}
