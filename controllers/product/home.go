package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// GetHome returns the storefront landing data: up to three featured products
// and the three most recent blog posts.
//
// GET /home
func GetHome(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var featured []models.Product
		if err := db.Preload("Brand").Where("featured = ?", true).Limit(3).Find(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}

		var posts []models.BlogPost
		if err := db.Order("date DESC").Limit(3).Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"main_products": featured,
			"posts":         posts,
		})
	}
}
