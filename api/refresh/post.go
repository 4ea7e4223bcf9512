package refresh

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
	refreshService "github.com/codegirl-007/kiddos-api/internal/services/refresh"
)

// RefreshRequest optionally narrows a refresh to specific channels.
// Empty or omitted means every curated channel.
type RefreshRequest struct {
	ChannelIDs []string `json:"channelIds"`
}

// Post handles manual catalog refresh requests
// @Summary      Refresh the video cache
// @Description  Synchronously re-fetch videos for the given channels (or all of them) and report the outcome
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest false "Optional channel subset"
// @Success      200 {object} types.RefreshResponse "Aggregated refresh result"
// @Failure      400 {object} types.ErrorResponse "Bad request - malformed body"
// @Failure      409 {object} types.ErrorResponse "A refresh is already running"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos/refresh [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest
		if c.Request.ContentLength > 0 {
			if !types.BindJSONOrError(c, &req) {
				return
			}
		}

		var (
			result refreshService.BatchResult
			err    error
		)
		ctx := c.Request.Context()
		if len(req.ChannelIDs) > 0 {
			result, err = deps.Coordinator.RefreshAll(ctx, req.ChannelIDs)
		} else {
			result, err = deps.Coordinator.RefreshCatalog(ctx)
		}
		if err != nil {
			if errors.Is(err, refreshService.ErrRefreshInProgress) {
				types.SendConflict(c, "A refresh is already in progress")
				return
			}
			types.SendInternalError(c, "Failed to refresh videos")
			return
		}

		types.SendSuccess(c, types.FromBatchResult(result))
	}
}
