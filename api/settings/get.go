package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
)

// CacheDurationResponse reports the live cache TTL
type CacheDurationResponse struct {
	Minutes int `json:"minutes"`
}

// GetCacheDuration handles cache TTL reads
// @Summary      Get the cache duration
// @Tags         settings
// @Produce      json
// @Success      200 {object} CacheDurationResponse "Current TTL in minutes"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/settings/cache-duration [get]
func GetCacheDuration(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		minutes, err := deps.SettingsService.CacheDurationMinutes(c.Request.Context())
		if err != nil {
			types.SendInternalError(c, "Failed to read cache duration")
			return
		}

		types.SendSuccess(c, CacheDurationResponse{Minutes: minutes})
	}
}
