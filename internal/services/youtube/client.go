package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API v3 for channel and playlist lookups
type Client struct {
	service    *youtube.Service
	limiter    *rate.Limiter
	maxResults int64
}

// Config holds configuration for the YouTube client
type Config struct {
	APIKey     string
	MaxResults int
	// Requests per second against the Data API
	RateLimit int
	Timeout   time.Duration
}

// NewClient creates a read-only YouTube Data API client using an API key
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	if cfg.MaxResults <= 0 || cfg.MaxResults > 50 {
		cfg.MaxResults = 50
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}

	return &Client{
		service:    service,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit),
		maxResults: int64(cfg.MaxResults),
	}, nil
}

// FetchChannelInfo resolves a channel by ID (UC...) or handle (@name) and
// returns its attributes including the uploads playlist ID.
func (c *Client) FetchChannelInfo(ctx context.Context, identifier string) (*ChannelInfo, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrInvalidIdentifier
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	call := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).Context(ctx)
	switch {
	case strings.HasPrefix(identifier, "UC"):
		call = call.Id(identifier)
	case strings.HasPrefix(identifier, "@"):
		call = call.ForHandle(identifier)
	default:
		call = call.ForHandle("@" + identifier)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, mapError("channels.list", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: channel %q", ErrNotFound, identifier)
	}

	item := resp.Items[0]
	info := &ChannelInfo{
		ID:          item.Id,
		Name:        item.Snippet.Title,
		Handle:      item.Snippet.CustomUrl,
		Description: item.Snippet.Description,
	}
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
		info.ThumbnailURL = item.Snippet.Thumbnails.Medium.Url
	}
	if item.Statistics != nil {
		info.SubscriberCount = int64(item.Statistics.SubscriberCount)
		info.VideoCount = int64(item.Statistics.VideoCount)
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		info.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}
	return info, nil
}

// FetchVideos returns one page of videos from an uploads playlist, newest
// first, enriched with per-video statistics and duration.
func (c *Client) FetchVideos(ctx context.Context, playlistID string, maxResults int) ([]VideoInfo, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: empty playlist id", ErrInvalidIdentifier)
	}

	limit := c.maxResults
	if maxResults > 0 && int64(maxResults) < limit {
		limit = int64(maxResults)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	playlistResp, err := c.service.PlaylistItems.
		List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError("playlistItems.list", err)
	}

	videoIDs := make([]string, 0, len(playlistResp.Items))
	for _, item := range playlistResp.Items {
		if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return []VideoInfo{}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	videosResp, err := c.service.Videos.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError("videos.list", err)
	}

	videos := make([]VideoInfo, 0, len(videosResp.Items))
	for _, item := range videosResp.Items {
		info := VideoInfo{
			ID:          item.Id,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			info.ThumbnailURL = item.Snippet.Thumbnails.Medium.Url
		}
		if published, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			info.PublishedAt = published
		}
		// Counts are provider-supplied non-negative integers; missing
		// statistics fall back to zero.
		if item.Statistics != nil {
			info.ViewCount = int64(item.Statistics.ViewCount)
			info.LikeCount = int64(item.Statistics.LikeCount)
		}
		if item.ContentDetails != nil {
			info.Duration = item.ContentDetails.Duration
		}
		videos = append(videos, info)
	}

	return videos, nil
}
