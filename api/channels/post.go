package channels

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
	channelsService "github.com/codegirl-007/kiddos-api/internal/services/channels"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

// AddChannelRequest is the payload for adding a curated channel
type AddChannelRequest struct {
	// Identifier is a channel ID or an @handle
	Identifier string `json:"identifier" binding:"required"`
}

// Post handles adding a channel to the curated set
// @Summary      Add a curated channel
// @Description  Resolve a channel ID or @handle upstream and add it to the curated set
// @Tags         channels
// @Accept       json
// @Produce      json
// @Param        request body AddChannelRequest true "Channel identifier"
// @Success      201 {object} types.ChannelResponse "Created channel"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid identifier"
// @Failure      404 {object} types.ErrorResponse "No such channel upstream"
// @Failure      409 {object} types.ErrorResponse "Channel already curated"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/channels [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddChannelRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		channel, err := deps.ChannelService.AddChannel(c.Request.Context(), req.Identifier)
		if err != nil {
			switch {
			case errors.Is(err, channelsService.ErrChannelExists):
				types.SendConflict(c, "Channel is already curated")
			case errors.Is(err, youtube.ErrInvalidIdentifier):
				types.SendBadRequest(c, "Invalid channel identifier")
			case youtube.IsNotFound(err):
				types.SendNotFound(c, "Channel not found upstream")
			case youtube.IsQuotaExceeded(err):
				c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
					Error: "Upstream quota exceeded, try again later",
				})
			default:
				types.SendInternalError(c, "Failed to add channel")
			}
			return
		}

		types.SendCreated(c, types.FromChannel(*channel))
	}
}
