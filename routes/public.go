package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	blogControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/blog"
	productcontroller "github.com/SkriptSparrow/Catalog-AGT/controllers/product"
	subscriberControllers "github.com/SkriptSparrow/Catalog-AGT/controllers/subscriber"
)

// SetupPublicRoutes registers the storefront endpoints that need no session.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/home", productcontroller.GetHome(db))

	r.GET("/catalog", productcontroller.GetCatalog(db))
	r.GET("/product_card/:id", productcontroller.GetProductByID(db))

	r.GET("/blog", blogControllers.GetPosts(db))
	r.GET("/blog_card/:id", blogControllers.GetPostByID(db))

	r.POST("/subscribe", subscriberControllers.Subscribe(db))
}
