package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	allowHeaders = "Content-Type, Authorization, true"
	allowMethods = "GET, POST, PATCH, DELETE, OPTIONS"
)

// AccessControl stamps the access control headers on every response,
// including responses to requests that carry no Origin header. The headers
// are stamped again right before they are written, so later middleware
// such as the preflight handler cannot replace them.
func AccessControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &accessControlWriter{ResponseWriter: c.Writer}
		w.stamp()
		c.Writer = w
		c.Next()
	}
}

type accessControlWriter struct {
	gin.ResponseWriter
}

func (w *accessControlWriter) stamp() {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Headers", allowHeaders)
	header.Set("Access-Control-Allow-Methods", allowMethods)
}

func (w *accessControlWriter) WriteHeaderNow() {
	if !w.Written() {
		w.stamp()
	}
	w.ResponseWriter.WriteHeaderNow()
}

func (w *accessControlWriter) Write(data []byte) (int, error) {
	if !w.Written() {
		w.stamp()
	}
	return w.ResponseWriter.Write(data)
}

func (w *accessControlWriter) WriteString(s string) (int, error) {
	if !w.Written() {
		w.stamp()
	}
	return w.ResponseWriter.WriteString(s)
}

// CORS answers preflight requests from any origin.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "true"},
		MaxAge:          12 * time.Hour,
	})
}
