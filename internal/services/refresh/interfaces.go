package refresh

import (
	"context"

	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

// VideoFetcher defines the interface for fetching a channel's videos
// from the upstream provider
type VideoFetcher interface {
	FetchVideos(ctx context.Context, playlistID string, maxResults int) ([]youtube.VideoInfo, error)
}

// ChannelSyncer refreshes one channel's cached video set
type ChannelSyncer interface {
	Sync(ctx context.Context, channelID string) (int, error)
}

// RefreshCoordinator orchestrates refreshing many channels concurrently
type RefreshCoordinator interface {
	// RefreshAll refreshes the given channels under the catalog-wide
	// lease, isolating per-channel failures. Returns
	// ErrRefreshInProgress when another refresh holds the lease.
	RefreshAll(ctx context.Context, channelIDs []string) (BatchResult, error)

	// RefreshCatalog refreshes every known channel
	RefreshCatalog(ctx context.Context) (BatchResult, error)
}
