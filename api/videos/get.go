package videos

import (
	"github.com/gin-gonic/gin"

	"github.com/codegirl-007/kiddos-api/api/types"
	videosService "github.com/codegirl-007/kiddos-api/internal/services/videos"
)

// Get handles paginated video catalog listings
// @Summary      List cached videos
// @Description  List videos from the local cache with filtering, sorting and pagination
// @Tags         videos
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 50)"
// @Param        channelId query string false "Restrict to a single channel"
// @Param        search query string false "Case-insensitive match against title and description"
// @Param        sort query string false "Sort order: newest, oldest or popular"
// @Success      200 {object} types.VideoListResponse "Videos with paging and cache metadata"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := types.ParseIntQuery(c, "page", 1)
		if !ok {
			return
		}
		limit, ok := types.ParseIntQuery(c, "limit", videosService.DefaultPageSize)
		if !ok {
			return
		}

		params := videosService.ListParams{
			Page:      page,
			Limit:     limit,
			ChannelID: c.Query("channelId"),
			Search:    c.Query("search"),
			Sort:      c.Query("sort"),
		}

		items, meta, err := deps.VideoService.List(c.Request.Context(), params)
		if err != nil {
			types.SendInternalError(c, "Failed to list videos")
			return
		}

		types.SendSuccess(c, types.VideoListResponse{
			Videos: types.FromVideoList(items),
			Meta:   meta,
		})
	}
}
