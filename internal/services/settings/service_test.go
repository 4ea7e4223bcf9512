package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/codegirl-007/kiddos-api/internal/models"
)

func setupService(t *testing.T, opts ...ServiceOption) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	repo := NewRepository(db)
	require.NoError(t, repo.EnsureDefaults(context.Background(), Defaults(60)))

	return NewService(repo, opts...)
}

func TestCacheDurationMinutes(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	minutes, err := svc.CacheDurationMinutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, minutes)

	require.NoError(t, svc.SetCacheDurationMinutes(ctx, 120))
	minutes, err = svc.CacheDurationMinutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, minutes)
}

func TestSetCacheDurationRejectsNonPositive(t *testing.T) {
	svc := setupService(t)

	assert.Error(t, svc.SetCacheDurationMinutes(context.Background(), 0))
	assert.Error(t, svc.SetCacheDurationMinutes(context.Background(), -5))
}

func TestAcquireRefreshLease(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	acquired, err := svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	assert.True(t, acquired)

	inProgress, err := svc.IsRefreshInProgress(ctx)
	require.NoError(t, err)
	assert.True(t, inProgress)

	// Second acquisition must fail while the lease is held
	acquired, err = svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, svc.ReleaseRefreshLease(ctx))

	inProgress, err = svc.IsRefreshInProgress(ctx)
	require.NoError(t, err)
	assert.False(t, inProgress)

	acquired, err = svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestAbandonedLeaseIsStolen(t *testing.T) {
	svc := setupService(t, WithMaxLeaseAge(time.Minute))
	ctx := context.Background()

	acquired, err := svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	// Backdate the lease start far past the max age
	stale := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	require.NoError(t, svc.repository.Set(ctx, KeyRefreshStartedAt, stale))

	acquired, err = svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	assert.True(t, acquired, "abandoned lease should be stolen")

	// The stolen lease is fresh again, so a third caller is refused
	acquired, err = svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestFreshLeaseIsNotStolen(t *testing.T) {
	svc := setupService(t, WithMaxLeaseAge(time.Hour))
	ctx := context.Background()

	acquired, err := svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	acquired, err = svc.AcquireRefreshLease(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)
}
