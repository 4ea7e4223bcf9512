package channels

import (
	"context"
	"time"

	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

// ChannelRepository defines the interface for channel and cache-entry
// persistence
type ChannelRepository interface {
	CreateChannel(ctx context.Context, channel *models.Channel) error
	GetChannelByID(ctx context.Context, id string) (*models.Channel, error)
	ListChannels(ctx context.Context) ([]models.Channel, error)
	ListChannelIDs(ctx context.Context) ([]string, error)
	UpdateChannel(ctx context.Context, channel *models.Channel) error
	DeleteChannel(ctx context.Context, id string) error

	GetCacheEntry(ctx context.Context, channelID string) (*models.ChannelCacheEntry, error)
	UpsertCacheEntry(ctx context.Context, entry *models.ChannelCacheEntry) error

	// CacheSummary reports catalog-wide freshness: total channel count,
	// how many have a successful fetch recorded, and the oldest
	// last-fetched timestamp among them.
	CacheSummary(ctx context.Context) (total int64, fetched int64, oldest *time.Time, err error)
}

// ChannelFetcher defines the interface for resolving channel metadata
// from the upstream provider
type ChannelFetcher interface {
	FetchChannelInfo(ctx context.Context, identifier string) (*youtube.ChannelInfo, error)
}

// ChannelSyncer triggers a video sync for a single channel. Satisfied by
// the refresh service; kept local so this package stays a leaf.
type ChannelSyncer interface {
	Sync(ctx context.Context, channelID string) (int, error)
}

// ChannelService defines the business logic interface for channel
// management
type ChannelService interface {
	AddChannel(ctx context.Context, identifier string) (*models.Channel, error)
	GetChannel(ctx context.Context, id string) (*models.Channel, error)
	ListChannels(ctx context.Context) ([]models.Channel, error)
	RemoveChannel(ctx context.Context, id string) error
}
