package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSMiddleware_AllowsAppDevOrigin(t *testing.T) {
	router := newCORSRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_ExtraOriginsFromEnv(t *testing.T) {
	t.Setenv("ORIGIN_URL", "https://app.foodrush.example, https://admin.foodrush.example")
	router := newCORSRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://admin.foodrush.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://admin.foodrush.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_RejectsUnknownOrigin(t *testing.T) {
	router := newCORSRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
