package channels

import (
	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
)

// RegisterRoutes registers curated channel routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /channels prefix
	router.GET("", List(deps))
	router.GET("/:id", Get(deps))
	router.POST("", Post(deps))
	router.DELETE("/:id", Delete(deps))
}
