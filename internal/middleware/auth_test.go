package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dastawez_backend/internal/auth"
	"dastawez_backend/internal/config"
	"dastawez_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	old := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })

	router := gin.New()

	protected := router.Group("/me")
	protected.Use(AuthMiddleware())
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})

	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(), RequireRoles(models.AppRoleAdmin))
	admin.GET("/panel", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func request(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingTokenRejected(t *testing.T) {
	router := setupAuthTest(t)

	w := request(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidTokenRejected(t *testing.T) {
	router := setupAuthTest(t)

	w := request(router, "/me", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenPasses(t *testing.T) {
	router := setupAuthTest(t)

	token, err := auth.GenerateToken("user-1", "user@example.com", models.AppRoleUser)
	require.NoError(t, err)

	w := request(router, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireRoles_NonAdminRejectedBeforeHandler(t *testing.T) {
	router := setupAuthTest(t)

	token, err := auth.GenerateToken("user-1", "user@example.com", models.AppRoleUser)
	require.NoError(t, err)

	w := request(router, "/admin/panel", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), `"ok"`)
}

func TestRequireRoles_AdminAllowed(t *testing.T) {
	router := setupAuthTest(t)

	token, err := auth.GenerateToken("admin-1", "admin@example.com", models.AppRoleAdmin)
	require.NoError(t, err)

	w := request(router, "/admin/panel", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
