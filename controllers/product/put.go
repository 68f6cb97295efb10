package productcontroller

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// UpdateProduct updates an existing product by ID. Accepts the same fields as
// CreateProduct; only provided fields change.
//
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("article"); v != "" {
			product.Article = v
		}
		if v := c.PostForm("full_marking"); v != "" {
			product.FullMarking = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("type"); v != "" {
			productType, err := mapProductType(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Type = productType
		}
		if v := c.PostForm("category"); v != "" {
			category, err := mapProductCategory(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Category = category
		}
		if v := c.PostForm("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("brand_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand_id"})
				return
			}
			var brand models.CarBrand
			if err := db.First(&brand, uint(id64)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
				return
			}
			product.BrandID = &brand.ID
		}
		if v := c.PostForm("in_stock"); v != "" {
			product.InStock = v == "true"
		}
		if v := c.PostForm("featured"); v != "" {
			product.Featured = v == "true"
		}

		if file, err := c.FormFile("photo"); err == nil {
			filename, err := savePhoto(c, file, filepath.Join(uploadDir, "products"), "filter")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.PhotoFilename = filename
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
