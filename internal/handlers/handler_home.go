package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes sets up the health check route.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
