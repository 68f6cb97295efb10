package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func setupRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", ValidateToken(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id"), "role": c.GetString("role")})
	})
	r.GET("/admin", ValidateToken(secret), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenUsesConfiguredSecret(t *testing.T) {
	r := setupRouter("configured-secret")
	claims := jwt.MapClaims{
		"user_id": 7,
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	w := get(r, "/me", signToken(t, "configured-secret", claims))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)

	// A token signed with any other secret is rejected.
	w = get(r, "/me", signToken(t, "other-secret", claims))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	r := setupRouter("configured-secret")
	token := signToken(t, "configured-secret", jwt.MapClaims{
		"user_id": 7,
		"role":    "user",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	w := get(r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := setupRouter("configured-secret")

	userToken := signToken(t, "configured-secret", jwt.MapClaims{
		"user_id": 7,
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := get(r, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := signToken(t, "configured-secret", jwt.MapClaims{
		"user_id": 1,
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w = get(r, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
