package settings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"
)

// Setting keys
const (
	KeyCacheDurationMinutes = "cache_duration_minutes"
	KeyRefreshInProgress    = "refresh_in_progress"
	KeyRefreshStartedAt     = "refresh_started_at"
)

// DefaultMaxLeaseAge is how long a refresh lease may be held before it is
// considered abandoned by a crashed process and can be stolen.
const DefaultMaxLeaseAge = 10 * time.Minute

// Service implements the SettingsService interface
type Service struct {
	repository  SettingRepository
	maxLeaseAge time.Duration
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithMaxLeaseAge sets the abandoned-lease threshold
func WithMaxLeaseAge(age time.Duration) ServiceOption {
	return func(s *Service) {
		if age > 0 {
			s.maxLeaseAge = age
		}
	}
}

var _ SettingsService = (*Service)(nil)

// NewService creates a new settings service
func NewService(repository SettingRepository, opts ...ServiceOption) *Service {
	s := &Service{
		repository:  repository,
		maxLeaseAge: DefaultMaxLeaseAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the seed values for a fresh database. The cache
// duration here is only the initial value; operators change it at runtime
// through the settings endpoint.
func Defaults(cacheDurationMinutes int) map[string]string {
	if cacheDurationMinutes <= 0 {
		cacheDurationMinutes = 360
	}
	return map[string]string{
		KeyCacheDurationMinutes: strconv.Itoa(cacheDurationMinutes),
		KeyRefreshInProgress:    "false",
		KeyRefreshStartedAt:     "",
	}
}

// CacheDurationMinutes reads the TTL setting. It is read on every
// staleness check so changes take effect on the next check.
func (s *Service) CacheDurationMinutes(ctx context.Context) (int, error) {
	setting, err := s.repository.Get(ctx, KeyCacheDurationMinutes)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return 0, nil
		}
		return 0, err
	}
	minutes, err := strconv.Atoi(setting.Value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", KeyCacheDurationMinutes, setting.Value, err)
	}
	return minutes, nil
}

func (s *Service) SetCacheDurationMinutes(ctx context.Context, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("cache duration must be positive, got %d", minutes)
	}
	return s.repository.Set(ctx, KeyCacheDurationMinutes, strconv.Itoa(minutes))
}

func (s *Service) IsRefreshInProgress(ctx context.Context) (bool, error) {
	setting, err := s.repository.Get(ctx, KeyRefreshInProgress)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return false, nil
		}
		return false, err
	}
	return setting.Value == "true", nil
}

// AcquireRefreshLease takes the lease via compare-and-swap so two
// near-simultaneous triggers cannot both proceed.
func (s *Service) AcquireRefreshLease(ctx context.Context) (bool, error) {
	acquired, err := s.repository.CompareAndSwap(ctx, KeyRefreshInProgress, "false", "true")
	if err != nil {
		return false, err
	}

	if acquired {
		if err := s.repository.Set(ctx, KeyRefreshStartedAt, time.Now().UTC().Format(time.RFC3339)); err != nil {
			// Lease is taken but without a timestamp the abandoned check
			// cannot recover it, so give it back.
			if releaseErr := s.ReleaseRefreshLease(ctx); releaseErr != nil {
				log.Printf("[ERROR] Failed to release refresh lease after timestamp error: %v", releaseErr)
			}
			return false, err
		}
		return true, nil
	}

	stale, staleValue, checkErr := s.leaseIsAbandoned(ctx)
	if checkErr != nil || !stale {
		return false, checkErr
	}

	// Stealing races against other stealers on the start timestamp, so
	// only one caller can adopt an abandoned lease.
	log.Printf("[INFO] Refresh lease held longer than %s, treating as abandoned", s.maxLeaseAge)
	now := time.Now().UTC().Format(time.RFC3339)
	stolen, err := s.repository.CompareAndSwap(ctx, KeyRefreshStartedAt, staleValue, now)
	if err != nil || !stolen {
		return false, err
	}
	return true, nil
}

func (s *Service) ReleaseRefreshLease(ctx context.Context) error {
	return s.repository.Set(ctx, KeyRefreshInProgress, "false")
}

// leaseIsAbandoned reports whether the current lease holder started
// longer ago than the configured maximum age, returning the raw
// timestamp value so stealing can swap against it. An unparseable
// start timestamp also counts as abandoned so a crash between the two
// lease writes cannot wedge refreshes forever.
func (s *Service) leaseIsAbandoned(ctx context.Context) (bool, string, error) {
	setting, err := s.repository.Get(ctx, KeyRefreshStartedAt)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return false, "", nil
		}
		return false, "", err
	}
	if setting.Value == "" {
		return true, "", nil
	}
	startedAt, err := time.Parse(time.RFC3339, setting.Value)
	if err != nil {
		return true, setting.Value, nil
	}
	return time.Since(startedAt) > s.maxLeaseAge, setting.Value, nil
}
