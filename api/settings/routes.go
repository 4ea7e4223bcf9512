package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
)

// RegisterRoutes registers runtime settings routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /settings prefix
	router.GET("/cache-duration", GetCacheDuration(deps))
	router.PUT("/cache-duration", PutCacheDuration(deps))
}
