package settings

import (
	"context"

	"github.com/codegirl-007/kiddos-api/internal/models"
)

// SettingRepository defines the interface for key/value setting persistence
type SettingRepository interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Set(ctx context.Context, key, value string) error

	// CompareAndSwap atomically replaces the value only if it currently
	// equals old. Returns true when the swap happened.
	CompareAndSwap(ctx context.Context, key, old, new string) (bool, error)

	// EnsureDefaults inserts any missing keys without overwriting
	// existing values.
	EnsureDefaults(ctx context.Context, defaults map[string]string) error
}

// SettingsService defines the business logic interface for settings and
// the catalog-wide refresh lease
type SettingsService interface {
	CacheDurationMinutes(ctx context.Context) (int, error)
	SetCacheDurationMinutes(ctx context.Context, minutes int) error

	IsRefreshInProgress(ctx context.Context) (bool, error)

	// AcquireRefreshLease attempts to take the catalog-wide refresh lease
	// in a single atomic step. Returns false when another refresh holds it,
	// unless that lease is older than the configured maximum age, in which
	// case it is treated as abandoned and stolen.
	AcquireRefreshLease(ctx context.Context) (bool, error)
	ReleaseRefreshLease(ctx context.Context) error
}
