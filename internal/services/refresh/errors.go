package refresh

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrRefreshInProgress indicates another coordinated refresh holds
	// the lease. Both the opportunistic read-triggered path and manual
	// refresh requests respect it.
	ErrRefreshInProgress = errors.New("catalog refresh already in progress")
)

// ChannelError records one channel's failure inside a batch
type ChannelError struct {
	ChannelID string `json:"channelId"`
	Message   string `json:"message"`
}

// BatchResult aggregates per-channel outcomes of a coordinated refresh.
// One failing channel never reduces another channel's reported success.
type BatchResult struct {
	Succeeded   int            `json:"succeeded"`
	Failed      int            `json:"failed"`
	VideosAdded int            `json:"videosAdded"`
	Errors      []ChannelError `json:"errors"`
}

// SyncError represents a per-channel sync failure with the upstream
// message preserved verbatim
type SyncError struct {
	ChannelID string
	Cause     error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("syncing channel %s: %v", e.ChannelID, e.Cause)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}
