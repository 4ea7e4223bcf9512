package refresh

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/codegirl-007/kiddos-api/internal/services/channels"
	"github.com/codegirl-007/kiddos-api/internal/services/settings"
)

// Defaults for coordinated refresh
const (
	DefaultMaxConcurrentSyncs = 5
	DefaultSyncTimeout        = 30 * time.Second
)

// Coordinator fans out channel syncs with bounded parallelism under the
// catalog-wide refresh lease. Every per-channel call is isolated; one
// channel's failure never cancels or fails its siblings.
type Coordinator struct {
	syncer             ChannelSyncer
	channels           channels.ChannelRepository
	settings           settings.SettingsService
	maxConcurrentSyncs int
	syncTimeout        time.Duration
}

// CoordinatorOption is a functional option for configuring the coordinator
type CoordinatorOption func(*Coordinator)

// WithMaxConcurrentSyncs caps how many channels sync at once
func WithMaxConcurrentSyncs(max int) CoordinatorOption {
	return func(c *Coordinator) {
		if max > 0 {
			c.maxConcurrentSyncs = max
		}
	}
}

// WithSyncTimeout bounds each per-channel provider call so one hung
// channel cannot hold the lease indefinitely
func WithSyncTimeout(timeout time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		if timeout > 0 {
			c.syncTimeout = timeout
		}
	}
}

var _ RefreshCoordinator = (*Coordinator)(nil)

// NewCoordinator creates a new refresh coordinator
func NewCoordinator(syncer ChannelSyncer, channelRepo channels.ChannelRepository, settingsService settings.SettingsService, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		syncer:             syncer,
		channels:           channelRepo,
		settings:           settingsService,
		maxConcurrentSyncs: DefaultMaxConcurrentSyncs,
		syncTimeout:        DefaultSyncTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RefreshCatalog refreshes every known channel
func (c *Coordinator) RefreshCatalog(ctx context.Context) (BatchResult, error) {
	ids, err := c.channels.ListChannelIDs(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("listing channels: %w", err)
	}
	return c.RefreshAll(ctx, ids)
}

// RefreshAll refreshes the given channels concurrently and aggregates
// per-channel outcomes. An empty id set returns immediately without
// touching the lease.
func (c *Coordinator) RefreshAll(ctx context.Context, channelIDs []string) (BatchResult, error) {
	if len(channelIDs) == 0 {
		return BatchResult{Errors: []ChannelError{}}, nil
	}

	acquired, err := c.settings.AcquireRefreshLease(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("acquiring refresh lease: %w", err)
	}
	if !acquired {
		return BatchResult{}, ErrRefreshInProgress
	}

	// The lease must come back on every exit path, including panics and
	// cancellation of the whole batch.
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := c.settings.ReleaseRefreshLease(releaseCtx); err != nil {
			log.Printf("[ERROR] Failed to release refresh lease: %v", err)
		}
	}()

	var (
		result BatchResult
		mu     sync.Mutex
		wg     sync.WaitGroup
	)
	result.Errors = []ChannelError{}

	sem := make(chan struct{}, c.maxConcurrentSyncs)

	for _, channelID := range channelIDs {
		wg.Add(1)
		sem <- struct{}{}

		go func(id string) {
			defer wg.Done()
			defer func() { <-sem }()

			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					result.Failed++
					result.Errors = append(result.Errors, ChannelError{
						ChannelID: id,
						Message:   fmt.Sprintf("panic: %v", r),
					})
					mu.Unlock()
					log.Printf("[ERROR] Panic syncing channel %s: %v", id, r)
				}
			}()

			syncCtx, cancel := context.WithTimeout(ctx, c.syncTimeout)
			defer cancel()

			count, err := c.syncer.Sync(syncCtx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, ChannelError{ChannelID: id, Message: err.Error()})
				return
			}
			result.Succeeded++
			result.VideosAdded += count
		}(channelID)
	}

	wg.Wait()

	log.Printf("[INFO] Catalog refresh finished: %d succeeded, %d failed, %d videos cached",
		result.Succeeded, result.Failed, result.VideosAdded)

	return result, nil
}
