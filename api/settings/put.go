package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
)

// UpdateCacheDurationRequest is the payload for changing the cache TTL
type UpdateCacheDurationRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

// PutCacheDuration handles cache TTL updates
// @Summary      Set the cache duration
// @Description  Update the TTL used for staleness checks; takes effect on the next read
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateCacheDurationRequest true "TTL in minutes"
// @Success      200 {object} CacheDurationResponse "Updated TTL"
// @Failure      400 {object} types.ErrorResponse "Bad request - non-positive TTL"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/settings/cache-duration [put]
func PutCacheDuration(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCacheDurationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if req.Minutes <= 0 {
			types.SendBadRequest(c, "minutes must be positive")
			return
		}

		if err := deps.SettingsService.SetCacheDurationMinutes(c.Request.Context(), req.Minutes); err != nil {
			types.SendInternalError(c, "Failed to update cache duration")
			return
		}

		types.SendSuccess(c, CacheDurationResponse{Minutes: req.Minutes})
	}
}
