package refresh

import (
	"context"
	"log"
	"time"

	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/internal/services/channels"
	"github.com/codegirl-007/kiddos-api/internal/services/videos"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

// DefaultMaxResults is the provider page cap for one sync
const DefaultMaxResults = 50

// Syncer refreshes a single channel's cached video set: it fetches one
// page of uploads and atomically replaces the channel's rows. On failure
// the previous rows stay untouched; stale-but-present beats empty.
type Syncer struct {
	channels   channels.ChannelRepository
	videos     videos.VideoRepository
	fetcher    VideoFetcher
	maxResults int
	now        func() time.Time
}

// SyncerOption is a functional option for configuring the syncer
type SyncerOption func(*Syncer)

// WithMaxResults caps how many videos one sync fetches
func WithMaxResults(max int) SyncerOption {
	return func(s *Syncer) {
		if max > 0 {
			s.maxResults = max
		}
	}
}

// WithSyncerClock overrides the wall clock, used in tests
func WithSyncerClock(now func() time.Time) SyncerOption {
	return func(s *Syncer) {
		if now != nil {
			s.now = now
		}
	}
}

var _ ChannelSyncer = (*Syncer)(nil)

// NewSyncer creates a new channel syncer
func NewSyncer(channelRepo channels.ChannelRepository, videoRepo videos.VideoRepository, fetcher VideoFetcher, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		channels:   channelRepo,
		videos:     videoRepo,
		fetcher:    fetcher,
		maxResults: DefaultMaxResults,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync refreshes one channel and returns the number of videos cached.
func (s *Syncer) Sync(ctx context.Context, channelID string) (int, error) {
	channel, err := s.channels.GetChannelByID(ctx, channelID)
	if err != nil {
		// ChannelNotFound is a caller error, not retried
		return 0, err
	}

	items, err := s.fetcher.FetchVideos(ctx, channel.UploadsPlaylistID, s.maxResults)
	if err != nil {
		// The failure consumes the TTL window too, so a broken upstream
		// is not re-fetched on every read.
		s.recordFailure(ctx, channelID, err)
		return 0, &SyncError{ChannelID: channelID, Cause: err}
	}

	now := s.now().UTC()
	cached := make([]models.Video, 0, len(items))
	for _, item := range items {
		cached = append(cached, models.Video{
			ID:              item.ID,
			ChannelID:       channelID,
			Title:           item.Title,
			Description:     item.Description,
			ThumbnailURL:    item.ThumbnailURL,
			PublishedAt:     item.PublishedAt,
			ViewCount:       item.ViewCount,
			LikeCount:       item.LikeCount,
			Duration:        item.Duration,
			DurationSeconds: youtube.ParseDuration(item.Duration),
			CachedAt:        now,
		})
	}

	if err := s.videos.ReplaceChannelVideos(ctx, channelID, cached); err != nil {
		s.recordFailure(ctx, channelID, err)
		return 0, &SyncError{ChannelID: channelID, Cause: err}
	}

	entry := &models.ChannelCacheEntry{
		ChannelID:     channelID,
		LastFetchedAt: &now,
		LastError:     "",
		TotalResults:  len(cached),
	}
	if err := s.channels.UpsertCacheEntry(ctx, entry); err != nil {
		return 0, &SyncError{ChannelID: channelID, Cause: err}
	}

	return len(cached), nil
}

// recordFailure advances the cache entry's fetch timestamp and stores
// the error message while leaving cached videos alone.
func (s *Syncer) recordFailure(ctx context.Context, channelID string, cause error) {
	now := s.now().UTC()

	entry, err := s.channels.GetCacheEntry(ctx, channelID)
	if err != nil {
		log.Printf("[ERROR] Failed to load cache entry for channel %s: %v", channelID, err)
		entry = nil
	}
	if entry == nil {
		entry = &models.ChannelCacheEntry{ChannelID: channelID}
	}
	entry.LastFetchedAt = &now
	entry.LastError = cause.Error()

	if err := s.channels.UpsertCacheEntry(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to record sync failure for channel %s: %v", channelID, err)
	}
}
