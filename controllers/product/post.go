package productcontroller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// Map string to ProductType
func mapProductType(value string) (models.ProductType, error) {
	switch strings.ToLower(value) {
	case string(models.TypeSpecial):
		return models.TypeSpecial, nil
	case string(models.TypeAgricultural):
		return models.TypeAgricultural, nil
	case string(models.TypeTrucks):
		return models.TypeTrucks, nil
	case string(models.TypeUniversal):
		return models.TypeUniversal, nil
	default:
		return "", errors.New("invalid product type")
	}
}

// Map string to ProductCategory
func mapProductCategory(value string) (models.ProductCategory, error) {
	switch strings.ToLower(value) {
	case string(models.CategoryAir):
		return models.CategoryAir, nil
	case string(models.CategoryCabin):
		return models.CategoryCabin, nil
	case string(models.CategoryFuel):
		return models.CategoryFuel, nil
	case string(models.CategoryOil):
		return models.CategoryOil, nil
	case string(models.CategoryHydraulic):
		return models.CategoryHydraulic, nil
	default:
		return "", errors.New("invalid product category")
	}
}

var allowedPhotoExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

// savePhoto stores an uploaded image under dir with a collision-resistant
// generated name and returns the stored filename.
func savePhoto(c *gin.Context, file *multipart.FileHeader, dir, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return "", errors.New("unsupported image format, allowed: png, jpg, jpeg, gif")
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// CreateProduct creates a new catalog entry with an optional photo upload.
//
// POST /admin/products
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		article := strings.TrimSpace(c.PostForm("article"))
		priceStr := c.PostForm("price")
		if name == "" || article == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, article and price are required"})
			return
		}

		productType, err := mapProductType(c.PostForm("type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category, err := mapProductCategory(c.PostForm("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var brandID *uint
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
			brandID = &brand.ID
		}

		product := models.Product{
			Name:        name,
			Article:     article,
			FullMarking: c.PostForm("full_marking"),
			Type:        productType,
			Category:    category,
			BrandID:     brandID,
			Price:       price,
			Description: c.PostForm("description"),
			InStock:     c.PostForm("in_stock") == "true",
			Featured:    c.PostForm("featured") == "true",
		}

		if file, err := c.FormFile("photo"); err == nil {
			filename, err := savePhoto(c, file, filepath.Join(uploadDir, "products"), "filter")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.PhotoFilename = filename
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
