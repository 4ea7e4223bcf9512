package channels

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
	channelsService "github.com/codegirl-007/kiddos-api/internal/services/channels"
)

// Delete handles removing a channel and its cached videos
// @Summary      Remove a curated channel
// @Description  Remove a channel; its cached videos are deleted by cascade
// @Tags         channels
// @Param        id path string true "Channel ID"
// @Success      204 "Channel removed"
// @Failure      404 {object} types.ErrorResponse "Channel not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/channels/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ChannelService.RemoveChannel(c.Request.Context(), c.Param("id")); err != nil {
			if channelsService.IsNotFound(err) {
				types.SendNotFound(c, "Channel not found")
				return
			}
			types.SendInternalError(c, "Failed to remove channel")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
