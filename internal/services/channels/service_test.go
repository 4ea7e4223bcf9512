package channels

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

type MockChannelFetcher struct {
	mock.Mock
}

func (m *MockChannelFetcher) FetchChannelInfo(ctx context.Context, identifier string) (*youtube.ChannelInfo, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*youtube.ChannelInfo), args.Error(1)
}

type stubSyncer struct {
	mu     sync.Mutex
	synced []string
	done   chan struct{}
}

func (s *stubSyncer) Sync(ctx context.Context, channelID string) (int, error) {
	s.mu.Lock()
	s.synced = append(s.synced, channelID)
	s.mu.Unlock()
	select {
	case s.done <- struct{}{}:
	default:
	}
	return 0, nil
}

func setupChannelDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Channel{}, &models.Video{}, &models.ChannelCacheEntry{}))
	return db
}

func TestAddChannelResolvesAndPersists(t *testing.T) {
	db := setupChannelDB(t)
	repo := NewRepository(db)

	fetcher := new(MockChannelFetcher)
	fetcher.On("FetchChannelInfo", mock.Anything, "@storytime").Return(&youtube.ChannelInfo{
		ID:                "UCstory",
		Name:              "Storytime",
		Handle:            "@storytime",
		UploadsPlaylistID: "UUstory",
		SubscriberCount:   1200,
	}, nil)

	syncer := &stubSyncer{done: make(chan struct{}, 1)}
	service := NewService(repo, fetcher, WithSyncer(syncer))

	channel, err := service.AddChannel(context.Background(), "@storytime")
	require.NoError(t, err)
	assert.Equal(t, "UCstory", channel.ID)
	assert.Equal(t, "UUstory", channel.UploadsPlaylistID)

	stored, err := repo.GetChannelByID(context.Background(), "UCstory")
	require.NoError(t, err)
	assert.Equal(t, "Storytime", stored.Name)

	// Initial sync runs in the background
	select {
	case <-syncer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected initial sync to run")
	}
	assert.Equal(t, []string{"UCstory"}, syncer.synced)
}

func TestAddChannelRejectsDuplicates(t *testing.T) {
	db := setupChannelDB(t)
	repo := NewRepository(db)
	require.NoError(t, db.Create(&models.Channel{ID: "UCstory", Name: "Existing"}).Error)

	fetcher := new(MockChannelFetcher)
	fetcher.On("FetchChannelInfo", mock.Anything, "@storytime").Return(&youtube.ChannelInfo{ID: "UCstory"}, nil)

	service := NewService(repo, fetcher)
	_, err := service.AddChannel(context.Background(), "@storytime")
	assert.ErrorIs(t, err, ErrChannelExists)
}

func TestAddChannelPropagatesProviderErrors(t *testing.T) {
	db := setupChannelDB(t)
	repo := NewRepository(db)

	fetcher := new(MockChannelFetcher)
	fetcher.On("FetchChannelInfo", mock.Anything, "@missing").Return(nil, youtube.ErrNotFound)

	service := NewService(repo, fetcher)
	_, err := service.AddChannel(context.Background(), "@missing")
	assert.True(t, youtube.IsNotFound(err))
}

func TestRemoveChannelNotFound(t *testing.T) {
	db := setupChannelDB(t)
	service := NewService(NewRepository(db), nil)

	err := service.RemoveChannel(context.Background(), "UCnope")
	assert.True(t, IsNotFound(err))
}

func TestCacheSummary(t *testing.T) {
	db := setupChannelDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Channel{ID: "UC1", Name: "One"}).Error)
	require.NoError(t, db.Create(&models.Channel{ID: "UC2", Name: "Two"}).Error)

	older := time.Now().UTC().Add(-90 * time.Minute)
	newer := time.Now().UTC().Add(-10 * time.Minute)
	require.NoError(t, repo.UpsertCacheEntry(ctx, &models.ChannelCacheEntry{ChannelID: "UC1", LastFetchedAt: &older}))
	require.NoError(t, repo.UpsertCacheEntry(ctx, &models.ChannelCacheEntry{ChannelID: "UC2", LastFetchedAt: &newer}))

	total, fetched, oldest, err := repo.CacheSummary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.EqualValues(t, 2, fetched)
	require.NotNil(t, oldest)
	assert.WithinDuration(t, older, *oldest, time.Second)
}
