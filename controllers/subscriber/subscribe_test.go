package subscriberControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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
	require.NoError(t, db.AutoMigrate(&models.Subscriber{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/subscribe", Subscribe(db))
	r.GET("/admin/subscribers", GetAllSubscribers(db))
	r.PUT("/admin/subscribers/:id", UpdateSubscriber(db))
	return r
}

func subscribeJSON(r *gin.Engine, email string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(gin.H{"email": email})
	req := httptest.NewRequest(http.MethodPost, "/subscribe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeCreatesActiveSubscriber(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := subscribeJSON(r, "Reader@Example.com")
	require.Equal(t, http.StatusCreated, w.Code)

	var sub models.Subscriber
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.True(t, sub.Active)
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	require.Equal(t, http.StatusCreated, subscribeJSON(r, "reader@example.com").Code)

	// Re-submitting, in any letter case, must not add a second row. The
	// duplicate is detected by the unique index on the insert itself, so
	// concurrent signups collapse the same way.
	w := subscribeJSON(r, "READER@example.com")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "You are already subscribed")

	var count int64
	db.Model(&models.Subscriber{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	for _, email := range []string{"", "not-an-email", "a@b", "two words@example.com"} {
		w := subscribeJSON(r, email)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "email %q", email)
	}

	var count int64
	db.Model(&models.Subscriber{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubscribeAcceptsFormPost(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	form := url.Values{"email": {"footer@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateSubscriberActiveFlag(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	require.Equal(t, http.StatusCreated, subscribeJSON(r, "reader@example.com").Code)

	payload, _ := json.Marshal(gin.H{"active": false})
	req := httptest.NewRequest(http.MethodPut, "/admin/subscribers/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var sub models.Subscriber
	require.NoError(t, db.First(&sub, 1).Error)
	assert.False(t, sub.Active)
}
