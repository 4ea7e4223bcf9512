package types

import (
	"time"

	"github.com/codegirl-007/kiddos-api/internal/models"
	"github.com/codegirl-007/kiddos-api/internal/services/refresh"
	"github.com/codegirl-007/kiddos-api/internal/services/videos"
	"github.com/codegirl-007/kiddos-api/internal/services/youtube"
)

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// VideoResponse is a cached video shaped for clients. Duration is
// rendered human-readable here, at the presentation boundary only;
// storage keeps the ISO-8601 form untouched.
type VideoResponse struct {
	ID           string    `json:"id"`
	ChannelID    string    `json:"channelId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	PublishedAt  time.Time `json:"publishedAt"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	Duration     string    `json:"duration"`
}

// VideoListResponse wraps a paginated catalog listing
type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
	Meta   videos.Meta     `json:"meta"`
}

// ChannelResponse is a curated channel shaped for clients
type ChannelResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Handle          string     `json:"handle,omitempty"`
	ThumbnailURL    string     `json:"thumbnailUrl"`
	Description     string     `json:"description"`
	SubscriberCount int64      `json:"subscriberCount"`
	VideoCount      int64      `json:"videoCount"`
	LastFetchedAt   *time.Time `json:"lastFetchedAt,omitempty"`
	LastError       string     `json:"lastError,omitempty"`
}

// RefreshResponse reports a manual refresh outcome. VideosUpdated
// mirrors VideosAdded because every sync is a full replacement; there
// is no separate update count.
type RefreshResponse struct {
	ChannelsRefreshed int                    `json:"channelsRefreshed"`
	VideosAdded       int                    `json:"videosAdded"`
	VideosUpdated     int                    `json:"videosUpdated"`
	Errors            []refresh.ChannelError `json:"errors"`
}

// FromVideo converts a stored video to its response shape
func FromVideo(v models.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID,
		ChannelID:    v.ChannelID,
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		PublishedAt:  v.PublishedAt,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		Duration:     youtube.FormatDuration(v.DurationSeconds),
	}
}

// FromVideoList converts a stored video slice to response shapes
func FromVideoList(items []models.Video) []VideoResponse {
	out := make([]VideoResponse, len(items))
	for i, item := range items {
		out[i] = FromVideo(item)
	}
	return out
}

// FromChannel converts a stored channel to its response shape
func FromChannel(c models.Channel) ChannelResponse {
	resp := ChannelResponse{
		ID:              c.ID,
		Name:            c.Name,
		Handle:          c.Handle,
		ThumbnailURL:    c.ThumbnailURL,
		Description:     c.Description,
		SubscriberCount: c.SubscriberCount,
		VideoCount:      c.VideoCount,
	}
	if c.CacheEntry != nil {
		resp.LastFetchedAt = c.CacheEntry.LastFetchedAt
		resp.LastError = c.CacheEntry.LastError
	}
	return resp
}

// FromBatchResult converts a coordinator outcome to the refresh
// response shape
func FromBatchResult(result refresh.BatchResult) RefreshResponse {
	errs := result.Errors
	if errs == nil {
		errs = []refresh.ChannelError{}
	}
	return RefreshResponse{
		ChannelsRefreshed: result.Succeeded,
		VideosAdded:       result.VideosAdded,
		VideosUpdated:     result.VideosAdded,
		Errors:            errs,
	}
}
