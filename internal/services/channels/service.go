package channels

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

// DefaultInitialSyncTimeout bounds the background sync started when a
// channel is first added.
const DefaultInitialSyncTimeout = 30 * time.Second

// Service implements the ChannelService interface
type Service struct {
	repository         ChannelRepository
	fetcher            ChannelFetcher
	syncer             ChannelSyncer
	initialSyncTimeout time.Duration
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithSyncer enables an initial background video sync after AddChannel
func WithSyncer(syncer ChannelSyncer) ServiceOption {
	return func(s *Service) {
		s.syncer = syncer
	}
}

// WithInitialSyncTimeout sets the timeout for the post-add sync
func WithInitialSyncTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.initialSyncTimeout = timeout
		}
	}
}

var _ ChannelService = (*Service)(nil)

// NewService creates a new channel service
func NewService(repository ChannelRepository, fetcher ChannelFetcher, opts ...ServiceOption) *Service {
	s := &Service{
		repository:         repository,
		fetcher:            fetcher,
		initialSyncTimeout: DefaultInitialSyncTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddChannel resolves a channel identifier (UC id or @handle) upstream,
// persists it and kicks off an initial background video sync.
func (s *Service) AddChannel(ctx context.Context, identifier string) (*models.Channel, error) {
	if s.fetcher == nil {
		return nil, youtube.ErrNotConfigured
	}

	info, err := s.fetcher.FetchChannelInfo(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repository.GetChannelByID(ctx, info.ID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelExists, info.ID)
	} else if err != nil && !IsNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	channel := &models.Channel{
		ID:                info.ID,
		Name:              info.Name,
		Handle:            info.Handle,
		ThumbnailURL:      info.ThumbnailURL,
		Description:       info.Description,
		SubscriberCount:   info.SubscriberCount,
		VideoCount:        info.VideoCount,
		UploadsPlaylistID: info.UploadsPlaylistID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repository.CreateChannel(ctx, channel); err != nil {
		return nil, err
	}

	if s.syncer != nil {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[ERROR] Panic in initial sync for channel %s: %v", channel.ID, r)
				}
			}()

			syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.initialSyncTimeout)
			defer cancel()

			count, err := s.syncer.Sync(syncCtx, channel.ID)
			if err != nil {
				log.Printf("[ERROR] Initial sync failed for channel %s: %v", channel.ID, err)
				return
			}
			log.Printf("[INFO] Initial sync cached %d videos for channel %s", count, channel.ID)
		}()
	}

	return channel, nil
}

// GetChannel retrieves a channel by its upstream ID
func (s *Service) GetChannel(ctx context.Context, id string) (*models.Channel, error) {
	return s.repository.GetChannelByID(ctx, id)
}

// ListChannels returns all curated channels with their cache entries
func (s *Service) ListChannels(ctx context.Context) ([]models.Channel, error) {
	return s.repository.ListChannels(ctx)
}

// RemoveChannel deletes a channel; cached videos and the cache entry go
// with it via cascade.
func (s *Service) RemoveChannel(ctx context.Context, id string) error {
	return s.repository.DeleteChannel(ctx, id)
}
