package videos

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/internal/services/channels"
	"github.com/codegirl-007/kiddos-api/internal/services/settings"
)

// Pagination bounds for listing requests
const (
	DefaultPageSize = 12
	MaxPageSize     = 50

	// DefaultRefreshTimeout bounds the fire-and-forget refresh triggered
	// by a stale read.
	DefaultRefreshTimeout = 5 * time.Minute
)

// Service implements the VideoService interface
type Service struct {
	repository     VideoRepository
	channels       channels.ChannelRepository
	settings       settings.SettingsService
	refresh        RefreshFunc
	refreshTimeout time.Duration
	now            func() time.Time
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithRefreshTrigger wires the opportunistic background refresh
func WithRefreshTrigger(refresh RefreshFunc) ServiceOption {
	return func(s *Service) {
		s.refresh = refresh
	}
}

// WithRefreshTimeout bounds the triggered background refresh
func WithRefreshTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.refreshTimeout = timeout
		}
	}
}

// WithClock overrides the wall clock, used in tests
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

var _ VideoService = (*Service)(nil)

// NewService creates a new catalog query service
func NewService(repository VideoRepository, channelRepo channels.ChannelRepository, settingsService settings.SettingsService, opts ...ServiceOption) *Service {
	s := &Service{
		repository:     repository,
		channels:       channelRepo,
		settings:       settingsService,
		refreshTimeout: DefaultRefreshTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List serves the catalog read path: paginated, filtered, sorted videos
// plus freshness meta. When the cache is stale and no refresh is running
// it fires a background refresh without waiting for it; the response is
// always whatever is currently cached.
func (s *Service) List(ctx context.Context, params ListParams) ([]models.Video, Meta, error) {
	params = normalize(params)

	items, total, err := s.repository.ListVideos(ctx, params)
	if err != nil {
		return nil, Meta{}, err
	}

	meta := Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(params.Limit))),
		HasMore:    int64(params.Page*params.Limit) < total,
	}

	ttl, err := s.settings.CacheDurationMinutes(ctx)
	if err != nil {
		return nil, Meta{}, err
	}

	channelTotal, fetched, oldest, err := s.channels.CacheSummary(ctx)
	if err != nil {
		return nil, Meta{}, err
	}

	now := s.now()
	if oldest != nil {
		age := int(now.Sub(*oldest).Minutes())
		meta.OldestCacheAgeMinutes = &age
	}

	// The least-fresh channel determines overall staleness. A channel
	// with no cache entry counts as never fetched.
	if channelTotal > 0 {
		switch {
		case fetched < channelTotal:
			meta.CacheStale = true
		case ttl <= 0:
			meta.CacheStale = true
		case oldest != nil:
			meta.CacheStale = IsStale(&models.ChannelCacheEntry{LastFetchedAt: oldest}, ttl, now)
		}
	}

	refreshing, err := s.settings.IsRefreshInProgress(ctx)
	if err != nil {
		return nil, Meta{}, err
	}
	meta.Refreshing = refreshing

	if meta.CacheStale && !refreshing && s.refresh != nil {
		s.triggerRefresh(ctx)
	}

	return items, meta, nil
}

// triggerRefresh fires the coordinated refresh without awaiting it.
// Outcomes are logged, never surfaced to the triggering request; the
// coordinator's lease makes a concurrent double-trigger harmless.
func (s *Service) triggerRefresh(ctx context.Context) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] Panic in background catalog refresh: %v", r)
			}
		}()

		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout)
		defer cancel()

		ids, err := s.channels.ListChannelIDs(refreshCtx)
		if err != nil {
			log.Printf("[ERROR] Failed to list channels for background refresh: %v", err)
			return
		}

		if err := s.refresh(refreshCtx, ids); err != nil {
			log.Printf("[INFO] Background catalog refresh not started: %v", err)
		}
	}()
}

func normalize(params ListParams) ListParams {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > MaxPageSize {
		params.Limit = DefaultPageSize
	}
	switch params.Sort {
	case SortNewest, SortOldest, SortPopular:
	default:
		params.Sort = SortNewest
	}
	return params
}
