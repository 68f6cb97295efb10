package brandControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.CarBrand{}, &models.Product{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/brands", GetAllBrands(db))
	r.POST("/admin/brands", CreateBrand(db))
	r.PUT("/admin/brands/:id", UpdateBrand(db))
	r.DELETE("/admin/brands/:id", DeleteBrand(db))
	return r
}

func postBrand(r *gin.Engine, name string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(gin.H{"name": name})
	req := httptest.NewRequest(http.MethodPost, "/admin/brands", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBrandRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	require.Equal(t, http.StatusCreated, postBrand(r, "Kubota").Code)
	assert.Equal(t, http.StatusConflict, postBrand(r, "Kubota").Code)
}

func TestDeleteBrandRestrictedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	brand := models.CarBrand{Name: "Komatsu"}
	require.NoError(t, db.Create(&brand).Error)
	product := models.Product{
		Name:     "Hydraulic filter",
		Article:  "HF-1",
		Type:     models.TypeSpecial,
		Category: models.CategoryHydraulic,
		BrandID:  &brand.ID,
		Price:    decimal.RequireFromString("300.00"),
	}
	require.NoError(t, db.Create(&product).Error)

	req := httptest.NewRequest(http.MethodDelete, "/admin/brands/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Once the last referencing product is gone the brand can be removed.
	require.NoError(t, db.Delete(&product).Error)
	req = httptest.NewRequest(http.MethodDelete, "/admin/brands/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.CarBrand{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateBrandName(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	require.Equal(t, http.StatusCreated, postBrand(r, "Kubotta").Code)

	payload, _ := json.Marshal(gin.H{"name": "Kubota"})
	req := httptest.NewRequest(http.MethodPut, "/admin/brands/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var brand models.CarBrand
	require.NoError(t, db.First(&brand, 1).Error)
	assert.Equal(t, "Kubota", brand.Name)
}
