package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// GetCatalog returns the filtered, sorted product listing together with the
// selectable values for each filter dropdown.
//
// GET /catalog?q=&sort=&type=&category=&brand=&price_min=&price_max=
func GetCatalog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.TrimSpace(c.Query("q"))
		sortKey := c.Query("sort")
		typeFilter := c.Query("type")
		categoryFilter := c.Query("category")
		brandFilter := c.Query("brand")
		priceMinStr := c.Query("price_min")
		priceMaxStr := c.Query("price_max")

		query := db.Model(&models.Product{}).Preload("Brand")

		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(article) LIKE ?", like, like)
		}

		if typeFilter != "" {
			query = query.Where("type = ?", typeFilter)
		}
		if categoryFilter != "" {
			query = query.Where("category = ?", categoryFilter)
		}
		if brandFilter != "" {
			brandID, err := strconv.ParseUint(brandFilter, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand"})
				return
			}
			query = query.Where("brand_id = ?", uint(brandID))
		}
		if priceMinStr != "" {
			min, err := strconv.ParseFloat(priceMinStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_min"})
				return
			}
			query = query.Where("price >= ?", min)
		}
		if priceMaxStr != "" {
			max, err := strconv.ParseFloat(priceMaxStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_max"})
				return
			}
			query = query.Where("price <= ?", max)
		}

		// Unknown sort keys fall back to name ascending.
		var orderClause string
		switch sortKey {
		case "name_desc":
			orderClause = "name DESC"
		case "price_asc":
			orderClause = "price ASC"
		case "price_desc":
			orderClause = "price DESC"
		default:
			sortKey = "name_asc"
			orderClause = "name ASC"
		}

		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		types, categories, brands, err := filterOptions(db, typeFilter, categoryFilter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter options"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"types":      types,
			"categories": categories,
			"brands":     brands,
			"sort":       sortKey,
		})
	}
}

// filterOptions builds the dropdown option sets. The sets narrow each other
// partially: category options are restricted to the selected type, type
// options to the selected category, and brand options to the selected type
// only. Brand options deliberately ignore the category filter; the reference
// behavior is asymmetric and changing it needs a product decision.
func filterOptions(db *gorm.DB, typeFilter, categoryFilter string) ([]string, []string, []models.CarBrand, error) {
	typeQuery := db.Model(&models.Product{}).Distinct()
	categoryQuery := db.Model(&models.Product{}).Distinct()

	if typeFilter != "" {
		categoryQuery = categoryQuery.Where("type = ?", typeFilter)
	}
	if categoryFilter != "" {
		typeQuery = typeQuery.Where("category = ?", categoryFilter)
	}

	var types []string
	if err := typeQuery.Order("type").Pluck("type", &types).Error; err != nil {
		return nil, nil, nil, err
	}
	var categories []string
	if err := categoryQuery.Order("category").Pluck("category", &categories).Error; err != nil {
		return nil, nil, nil, err
	}

	brandIDQuery := db.Model(&models.Product{}).Distinct().Where("brand_id IS NOT NULL")
	if typeFilter != "" {
		brandIDQuery = brandIDQuery.Where("type = ?", typeFilter)
	}
	var brandIDs []uint
	if err := brandIDQuery.Pluck("brand_id", &brandIDs).Error; err != nil {
		return nil, nil, nil, err
	}

	brands := []models.CarBrand{}
	if len(brandIDs) > 0 {
		if err := db.Where("id IN ?", brandIDs).Order("name").Find(&brands).Error; err != nil {
			return nil, nil, nil, err
		}
	}
	return types, categories, brands, nil
}

// GetProductByID returns a single product card.
//
// GET /product_card/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Brand").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
