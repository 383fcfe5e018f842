package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia/metrics"
	"trivia/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Metrics())
	router.DELETE("/questions/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	routed := metrics.HTTPRequestsTotal.WithLabelValues("/questions/:id", http.MethodDelete, "200")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")
	routedBefore := testutil.ToFloat64(routed)
	unmatchedBefore := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/questions/1", "/questions/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, path, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// both ids share the route template series
	assert.Equal(t, routedBefore+2, testutil.ToFloat64(routed))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(unmatched))
}
