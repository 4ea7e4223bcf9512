package youtube

import "time"

// ChannelInfo is the provider-side view of a channel
type ChannelInfo struct {
	ID                string
	Name              string
	Handle            string
	ThumbnailURL      string
	Description       string
	SubscriberCount   int64
	VideoCount        int64
	UploadsPlaylistID string
}

// VideoInfo is the provider-side view of a single video
type VideoInfo struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	PublishedAt  time.Time
	ViewCount    int64
	LikeCount    int64
	// ISO-8601 duration string, e.g. "PT12M34S"
	Duration string
}
