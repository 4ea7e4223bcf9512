package channels

import (
	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
	channelsService "github.com/codegirl-007/kiddos-api/internal/services/channels"
)

// List handles curated channel listings
// @Summary      List curated channels
// @Tags         channels
// @Produce      json
// @Success      200 {array} types.ChannelResponse "Curated channels with cache state"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/channels [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.ChannelService.ListChannels(c.Request.Context())
		if err != nil {
			types.SendInternalError(c, "Failed to list channels")
			return
		}

		out := make([]types.ChannelResponse, len(items))
		for i, item := range items {
			out[i] = types.FromChannel(item)
		}
		types.SendSuccess(c, out)
	}
}

// Get handles single channel lookups
// @Summary      Get a curated channel
// @Tags         channels
// @Produce      json
// @Param        id path string true "Channel ID"
// @Success      200 {object} types.ChannelResponse "Channel with cache state"
// @Failure      404 {object} types.ErrorResponse "Channel not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/channels/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		channel, err := deps.ChannelService.GetChannel(c.Request.Context(), c.Param("id"))
		if err != nil {
			if channelsService.IsNotFound(err) {
				types.SendNotFound(c, "Channel not found")
				return
			}
			types.SendInternalError(c, "Failed to get channel")
			return
		}

		types.SendSuccess(c, types.FromChannel(*channel))
	}
}
