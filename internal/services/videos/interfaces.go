package videos

import (
	"context"

	"github.com/codegirl-007/kiddos-api/internal/models"
)

// Sort orders for catalog listings
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
)

// ListParams describes a catalog listing request
type ListParams struct {
	Page      int
	Limit     int
	ChannelID string
	Search    string
	Sort      string
}

// Meta describes pagination and catalog freshness for a listing response
type Meta struct {
	Page                  int   `json:"page"`
	Limit                 int   `json:"limit"`
	Total                 int64 `json:"total"`
	TotalPages            int   `json:"totalPages"`
	HasMore               bool  `json:"hasMore"`
	OldestCacheAgeMinutes *int  `json:"oldestCacheAge"`
	CacheStale            bool  `json:"cacheStale"`
	Refreshing            bool  `json:"refreshing"`
}

// VideoRepository defines the interface for cached video persistence
type VideoRepository interface {
	ListVideos(ctx context.Context, params ListParams) ([]models.Video, int64, error)

	// ReplaceChannelVideos atomically swaps the full cached set for one
	// channel inside a single transaction, so readers never observe a
	// transiently empty channel.
	ReplaceChannelVideos(ctx context.Context, channelID string, videos []models.Video) error

	GetVideosByChannelID(ctx context.Context, channelID string) ([]models.Video, error)
}

// RefreshFunc triggers a coordinated catalog refresh. Wired to the
// refresh coordinator at composition time; kept as a function type so
// this package stays independent of the coordinator.
type RefreshFunc func(ctx context.Context, channelIDs []string) error

// VideoService defines the business logic interface for the read path
type VideoService interface {
	List(ctx context.Context, params ListParams) ([]models.Video, Meta, error)
}
