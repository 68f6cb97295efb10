package brandControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

type BrandInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /admin/brands
func GetAllBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.CarBrand
		if err := db.Order("name").Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// POST /admin/brands
func CreateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		brand := models.CarBrand{Name: input.Name}
		if err := db.Create(&brand).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand already exists"})
			return
		}
		c.JSON(http.StatusCreated, brand)
	}
}

// PUT /admin/brands/:id
func UpdateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brand models.CarBrand
		if err := db.First(&brand, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}

		var input BrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		brand.Name = input.Name
		if err := db.Save(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
			return
		}
		c.JSON(http.StatusOK, brand)
	}
}

// DELETE /admin/brands/:id
//
// Deletion is restricted while catalog products still reference the brand.
func DeleteBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brand models.CarBrand
		if err := db.First(&brand, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("brand_id = ?", brand.ID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check brand references"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand is still referenced by products"})
			return
		}

		if err := db.Delete(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
	}
}
