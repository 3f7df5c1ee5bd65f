package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"algotrading-site/api/middleware"
)

func TestRequestLoggingPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogging())

	handled := false
	r.GET("/posts", func(c *gin.Context) {
		handled = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	r.ServeHTTP(w, req)

	assert.True(t, handled)
	assert.Equal(t, http.StatusOK, w.Code)
}
