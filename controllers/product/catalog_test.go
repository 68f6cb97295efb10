package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

type catalogResponse struct {
	Products   []models.Product  `json:"products"`
	Types      []string          `json:"types"`
	Categories []string          `json:"categories"`
	Brands     []models.CarBrand `json:"brands"`
	Sort       string            `json:"sort"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.CarBrand{},
		&models.Product{},
		&models.BlogPost{},
	))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/catalog", GetCatalog(db))
	r.GET("/product_card/:id", GetProductByID(db))
	return r
}

// seedCatalog builds a small cross-section of the catalog:
//
//	Kubota:  agricultural/oil, agricultural/air
//	Komatsu: special/hydraulic
func seedCatalog(t *testing.T, db *gorm.DB) (kubota, komatsu models.CarBrand) {
	t.Helper()
	kubota = models.CarBrand{Name: "Kubota"}
	komatsu = models.CarBrand{Name: "Komatsu"}
	require.NoError(t, db.Create(&kubota).Error)
	require.NoError(t, db.Create(&komatsu).Error)

	products := []models.Product{
		{Name: "Oil filter M1", Article: "OF-1", Type: models.TypeAgricultural, Category: models.CategoryOil, BrandID: &kubota.ID, Price: decimal.RequireFromString("120.00")},
		{Name: "Air filter K3", Article: "AF-3", Type: models.TypeAgricultural, Category: models.CategoryAir, BrandID: &kubota.ID, Price: decimal.RequireFromString("45.00")},
		{Name: "Hydraulic filter H9", Article: "HF-9", Type: models.TypeSpecial, Category: models.CategoryHydraulic, BrandID: &komatsu.ID, Price: decimal.RequireFromString("300.00")},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	return kubota, komatsu
}

func getCatalog(t *testing.T, r *gin.Engine, query string) (int, catalogResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/catalog"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp catalogResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestCatalogDefaultSortIsNameAscending(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	code, resp := getCatalog(t, r, "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Products, 3)

	assert.Equal(t, "name_asc", resp.Sort)
	assert.Equal(t, "Air filter K3", resp.Products[0].Name)
	assert.Equal(t, "Hydraulic filter H9", resp.Products[1].Name)
	assert.Equal(t, "Oil filter M1", resp.Products[2].Name)
}

func TestCatalogSortPriceDescending(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	code, resp := getCatalog(t, r, "?sort=price_desc")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Products, 3)

	for i := 1; i < len(resp.Products); i++ {
		prev := resp.Products[i-1].Price
		cur := resp.Products[i].Price
		assert.True(t, prev.GreaterThanOrEqual(cur), "prices out of order: %s before %s", prev, cur)
	}
}

func TestCatalogUnknownSortFallsBack(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	code, resp := getCatalog(t, r, "?sort=bogus")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "name_asc", resp.Sort)
}

func TestCatalogSearchMatchesNameAndArticle(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	code, resp := getCatalog(t, r, "?q=hydraulic")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Hydraulic filter H9", resp.Products[0].Name)

	code, resp = getCatalog(t, r, "?q=af-3")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Air filter K3", resp.Products[0].Name)
}

func TestCatalogFilterByBrand(t *testing.T) {
	db := setupTestDB(t)
	kubota, _ := seedCatalog(t, db)
	r := setupRouter(db)

	code, resp := getCatalog(t, r, "?brand="+itoa(kubota.ID))
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Products, 2)
	for _, p := range resp.Products {
		assert.Equal(t, kubota.ID, *p.BrandID)
	}
}

func TestCatalogPriceRange(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	code, resp := getCatalog(t, r, "?price_min=50&price_max=200")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Oil filter M1", resp.Products[0].Name)
}

func TestCatalogMalformedParamsRejected(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	for _, query := range []string{"?brand=kubota", "?price_min=cheap", "?price_max=12,50"} {
		code, _ := getCatalog(t, r, query)
		assert.Equalf(t, http.StatusBadRequest, code, "query %q", query)
	}
}

func TestCatalogDropdownNarrowing(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	// A type selection narrows categories and brands to that type.
	code, resp := getCatalog(t, r, "?type=agricultural")
	require.Equal(t, http.StatusOK, code)
	assert.ElementsMatch(t, []string{"air", "oil"}, resp.Categories)
	require.Len(t, resp.Brands, 1)
	assert.Equal(t, "Kubota", resp.Brands[0].Name)
	// The type dropdown itself stays complete so the user can switch.
	assert.ElementsMatch(t, []string{"agricultural", "special"}, resp.Types)

	// A category selection narrows types but leaves brands untouched.
	code, resp = getCatalog(t, r, "?category=hydraulic")
	require.Equal(t, http.StatusOK, code)
	assert.ElementsMatch(t, []string{"special"}, resp.Types)
	assert.Len(t, resp.Brands, 2)
}

func TestGetProductByID(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/product_card/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Oil filter M1", product.Name)
	require.NotNil(t, product.Brand)
	assert.Equal(t, "Kubota", product.Brand.Name)

	req = httptest.NewRequest(http.MethodGet, "/product_card/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
