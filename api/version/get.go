package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Kiddos API",
			"version":     "1.0.0",
			"description": "Family-safe video catalog API",
			"status":      "running",
		})
	}
}
