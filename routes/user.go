package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/config"
	cartControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/cart"
	orderControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/order"
	userControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/user"
	"github.com/SkriptSparrow/Catalog-AGT/mailer"
	"github.com/SkriptSparrow/Catalog-AGT/middleware"
)

// SetupUserRoutes registers the JWT-protected storefront endpoints: profile,
// shopping cart and order history.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, m *mailer.Mailer) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db, cfg.UploadDir))
	}

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/add", cartControllers.AddToCart(db))
		cartGroup.POST("/update", cartControllers.UpdateCartItem(db))
		cartGroup.POST("/remove", cartControllers.RemoveFromCart(db))
		cartGroup.POST("/checkout", orderControllers.Checkout(db, m))
	}

	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		orderGroup.GET("", orderControllers.GetUserOrders(db))
		orderGroup.GET("/:orderID", orderControllers.GetOrderByID(db))
	}
}
