package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// ImportProductsFromExcel bulk-loads catalog rows from an uploaded .xlsx file.
// Columns: Name, Article, FullMarking, Type, Category, Brand, Price,
// Description, InStock, Featured. Rows are matched by product name; existing
// products are updated, unknown brands are created on the fly.
//
// POST /admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(0)
			article := get(1)
			fullMarking := get(2)
			productType, errType := mapProductType(get(3))
			category, errCategory := mapProductCategory(get(4))
			brandName := get(5)
			price, errPrice := decimal.NewFromString(get(6))
			description := get(7)
			inStock := strings.EqualFold(get(8), "true")
			featured := strings.EqualFold(get(9), "true")

			if name == "" || article == "" || errType != nil || errCategory != nil || errPrice != nil || price.IsNegative() {
				skippedCount++
				continue
			}

			var brandID *uint
			if brandName != "" {
				var brand models.CarBrand
				if err := db.Where("name = ?", brandName).First(&brand).Error; err != nil {
					brand = models.CarBrand{Name: brandName}
					if err := db.Create(&brand).Error; err != nil {
						skippedCount++
						continue
					}
				}
				brandID = &brand.ID
			}

			var existing models.Product
			if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
				existing.Article = article
				existing.FullMarking = fullMarking
				existing.Type = productType
				existing.Category = category
				existing.BrandID = brandID
				existing.Price = price
				existing.Description = description
				existing.InStock = inStock
				existing.Featured = featured

				if err := db.Save(&existing).Error; err == nil {
					updatedCount++
				} else {
					skippedCount++
				}
				continue
			}

			product := models.Product{
				Name:        name,
				Article:     article,
				FullMarking: fullMarking,
				Type:        productType,
				Category:    category,
				BrandID:     brandID,
				Price:       price,
				Description: description,
				InStock:     inStock,
				Featured:    featured,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
