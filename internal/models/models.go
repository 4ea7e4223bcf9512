package models

import (
	"time"
)

// Channel represents a curated YouTube channel
type Channel struct {
	// Upstream channel ID, assigned by YouTube
	ID                string    `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null"`
	Handle            string    `json:"handle"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	Description       string    `json:"description" gorm:"type:text"`
	SubscriberCount   int64     `json:"subscriber_count"`
	VideoCount        int64     `json:"video_count"`
	UploadsPlaylistID string    `json:"uploads_playlist_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Videos     []Video            `json:"videos,omitempty" gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE"`
	CacheEntry *ChannelCacheEntry `json:"cache_entry,omitempty" gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE"`
}

// Video represents cached video metadata mirrored from YouTube.
// The rows for a channel are always a complete replacement of the
// last successful fetch, never a partial merge.
type Video struct {
	// Upstream video ID, globally unique per provider
	ID           string    `json:"id" gorm:"primaryKey"`
	ChannelID    string    `json:"channel_id" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at" gorm:"index"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`

	// ISO-8601 duration as supplied by the provider. DurationSeconds is
	// derived once at sync time so listings can filter and compare in SQL.
	Duration        string `json:"duration"`
	DurationSeconds int    `json:"duration_seconds" gorm:"index"`

	CachedAt time.Time `json:"cached_at"`
}

// ChannelCacheEntry tracks per-channel freshness metadata. Exactly one
// row per channel; absence means the channel has never been fetched.
type ChannelCacheEntry struct {
	ChannelID string `json:"channel_id" gorm:"primaryKey"`

	// LastFetchedAt advances on failed fetches too, so a failing upstream
	// is not hammered on every read.
	LastFetchedAt *time.Time `json:"last_fetched_at"`
	LastError     string     `json:"last_error"`
	TotalResults  int        `json:"total_results"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Setting is a generic key/value row. Holds at least
// cache_duration_minutes, refresh_in_progress and refresh_started_at.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
