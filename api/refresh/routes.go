package refresh

import (
	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
)

// RegisterRoutes registers manual refresh routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/videos/refresh (router already includes /videos prefix)
	router.POST("/refresh", Post(deps))
}
