package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia/handlers"
	"trivia/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AccessControl())
	router.Use(middleware.CORS())
	router.NoRoute(handlers.NotFound)
	router.GET("/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func assertAccessControl(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type, Authorization, true", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "GET, POST, PATCH, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestAccessControl(t *testing.T) {
	router := newCORSRouter()

	tests := []struct {
		name   string
		origin string
		path   string
		status int
	}{
		{"WithoutOrigin", "", "/categories", http.StatusOK},
		{"WithOrigin", "http://localhost:3000", "/categories", http.StatusOK},
		{"UnknownRoute", "http://localhost:3000", "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assertAccessControl(t, w)
		})
	}
}

func TestAccessControl_Preflight(t *testing.T) {
	router := newCORSRouter()

	req := httptest.NewRequest(http.MethodOptions, "/categories", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assertAccessControl(t, w)
}
