package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

var iso8601Duration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts an ISO-8601 duration string as returned by the
// YouTube Data API (e.g. "PT1H2M3S") into whole seconds. Returns 0 for
// an empty or unrecognized value rather than failing the sync.
func ParseDuration(iso string) int {
	if iso == "" {
		return 0
	}
	m := iso8601Duration.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return hours*3600 + minutes*60 + seconds
}

// FormatDuration renders whole seconds as "H:MM:SS" or "M:SS" for display.
// Storage always keeps the ISO-8601 form; this runs only at the response
// boundary.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
