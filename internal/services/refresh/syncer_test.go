package refresh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/internal/services/channels"
	"github.com/codegirl-007/kiddos-api/internal/services/videos"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchVideos(ctx context.Context, playlistID string, maxResults int) ([]youtube.VideoInfo, error) {
	args := m.Called(ctx, playlistID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]youtube.VideoInfo), args.Error(1)
}

func setupSyncerDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Channel{}, &models.Video{}, &models.ChannelCacheEntry{}))
	return db
}

func seedChannel(t *testing.T, db *gorm.DB, id, playlistID string) {
	require.NoError(t, db.Create(&models.Channel{
		ID:                id,
		Name:              "Channel " + id,
		UploadsPlaylistID: playlistID,
	}).Error)
}

func TestSyncReplacesChannelVideos(t *testing.T) {
	db := setupSyncerDB(t)
	channelRepo := channels.NewRepository(db)
	videoRepo := videos.NewRepository(db, 0)
	seedChannel(t, db, "UC1", "UU1")

	// Leftovers from a previous fetch must not survive the sync
	require.NoError(t, db.Create(&models.Video{ID: "old1", ChannelID: "UC1", Title: "Old"}).Error)
	require.NoError(t, db.Create(&models.Video{ID: "old2", ChannelID: "UC1", Title: "Older"}).Error)

	fetcher := new(MockFetcher)
	fetcher.On("FetchVideos", mock.Anything, "UU1", 50).Return([]youtube.VideoInfo{
		{ID: "new1", Title: "New One", Duration: "PT15M", ViewCount: 100},
		{ID: "new2", Title: "New Two", Duration: "PT1H2M3S", LikeCount: 7},
	}, nil)

	syncer := NewSyncer(channelRepo, videoRepo, fetcher)
	count, err := syncer.Sync(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	cached, err := videoRepo.GetVideosByChannelID(context.Background(), "UC1")
	require.NoError(t, err)
	require.Len(t, cached, 2)
	ids := []string{cached[0].ID, cached[1].ID}
	assert.ElementsMatch(t, []string{"new1", "new2"}, ids)

	byID := map[string]models.Video{}
	for _, v := range cached {
		byID[v.ID] = v
	}
	assert.Equal(t, 900, byID["new1"].DurationSeconds)
	assert.Equal(t, "PT15M", byID["new1"].Duration)
	assert.Equal(t, 3723, byID["new2"].DurationSeconds)

	entry, err := channelRepo.GetCacheEntry(context.Background(), "UC1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.NotNil(t, entry.LastFetchedAt)
	assert.Empty(t, entry.LastError)
	assert.Equal(t, 2, entry.TotalResults)

	fetcher.AssertExpectations(t)
}

func TestSyncFailurePreservesPriorState(t *testing.T) {
	db := setupSyncerDB(t)
	channelRepo := channels.NewRepository(db)
	videoRepo := videos.NewRepository(db, 0)
	seedChannel(t, db, "UC1", "UU1")

	require.NoError(t, db.Create(&models.Video{ID: "keep1", ChannelID: "UC1", Title: "Keep"}).Error)
	earlier := time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, channelRepo.UpsertCacheEntry(context.Background(), &models.ChannelCacheEntry{
		ChannelID:     "UC1",
		LastFetchedAt: &earlier,
		TotalResults:  1,
	}))

	fetcher := new(MockFetcher)
	fetcher.On("FetchVideos", mock.Anything, "UU1", 50).Return(nil, youtube.ErrQuotaExceeded)

	syncer := NewSyncer(channelRepo, videoRepo, fetcher)
	count, err := syncer.Sync(context.Background(), "UC1")
	require.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, youtube.IsQuotaExceeded(err))

	// Stale-but-present beats empty
	cached, err := videoRepo.GetVideosByChannelID(context.Background(), "UC1")
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "keep1", cached[0].ID)

	// The failure still consumes the TTL window
	entry, err := channelRepo.GetCacheEntry(context.Background(), "UC1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.NotNil(t, entry.LastFetchedAt)
	assert.True(t, entry.LastFetchedAt.After(earlier))
	assert.NotEmpty(t, entry.LastError)
}

func TestSyncChannelNotFound(t *testing.T) {
	db := setupSyncerDB(t)
	channelRepo := channels.NewRepository(db)
	videoRepo := videos.NewRepository(db, 0)

	fetcher := new(MockFetcher)
	syncer := NewSyncer(channelRepo, videoRepo, fetcher)

	_, err := syncer.Sync(context.Background(), "UCmissing")
	require.Error(t, err)
	assert.True(t, channels.IsNotFound(err))
	fetcher.AssertNotCalled(t, "FetchVideos")
}

func TestSyncEmptyPlaylistClearsVideos(t *testing.T) {
	db := setupSyncerDB(t)
	channelRepo := channels.NewRepository(db)
	videoRepo := videos.NewRepository(db, 0)
	seedChannel(t, db, "UC1", "UU1")
	require.NoError(t, db.Create(&models.Video{ID: "old1", ChannelID: "UC1", Title: "Old"}).Error)

	fetcher := new(MockFetcher)
	fetcher.On("FetchVideos", mock.Anything, "UU1", 50).Return([]youtube.VideoInfo{}, nil)

	syncer := NewSyncer(channelRepo, videoRepo, fetcher)
	count, err := syncer.Sync(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Zero(t, count)

	cached, err := videoRepo.GetVideosByChannelID(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Empty(t, cached)
}
