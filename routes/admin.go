package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/config"
	blogControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/blog"
	brandControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/brand"
	orderControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/order"
	productcontroller "github.com/SkriptSparrow/Catalog-AGT/controllers/product"
	subscriberControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/subscriber"
	userControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/user"
	"github.com/SkriptSparrow/Catalog-AGT/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Access requires an
// authenticated user whose token carries the admin role claim.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, cfg.UploadDir))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, cfg.UploadDir))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		brandAdmin := adminGroup.Group("/brands")
		{
			brandAdmin.GET("", brandControllers.GetAllBrands(db))
			brandAdmin.POST("", brandControllers.CreateBrand(db))
			brandAdmin.PUT("/:id", brandControllers.UpdateBrand(db))
			brandAdmin.DELETE("/:id", brandControllers.DeleteBrand(db))
		}

		blogAdmin := adminGroup.Group("/blog")
		{
			blogAdmin.POST("", blogControllers.CreatePost(db, cfg.UploadDir))
			blogAdmin.PUT("/:id", blogControllers.UpdatePost(db, cfg.UploadDir))
			blogAdmin.DELETE("/:id", blogControllers.DeletePost(db))
		}

		subscriberAdmin := adminGroup.Group("/subscribers")
		{
			subscriberAdmin.GET("", subscriberControllers.GetAllSubscribers(db))
			subscriberAdmin.PUT("/:id", subscriberControllers.UpdateSubscriber(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db))
		}
	}
}
