package videos

import (
	"time"

	"github.com/codegirl-007/kiddos-api/internal/models"
)

// IsStale decides whether a channel's cache entry is past its TTL.
// A nil entry or nil fetch timestamp means the channel was never
// fetched and is maximally stale. A non-positive TTL means always
// stale. Pure wall-clock comparison; TTLs are minute-granular so no
// monotonic clock is needed.
func IsStale(entry *models.ChannelCacheEntry, ttlMinutes int, now time.Time) bool {
	if entry == nil || entry.LastFetchedAt == nil {
		return true
	}
	if ttlMinutes <= 0 {
		return true
	}
	return now.Sub(*entry.LastFetchedAt) > time.Duration(ttlMinutes)*time.Minute
}
