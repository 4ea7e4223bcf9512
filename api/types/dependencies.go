package types

import (
	"github.com/codegirl-007/kiddos-api/internal/database"
	"github.com/codegirl-007/kiddos-api/internal/services/channels"
	"github.com/codegirl-007/kiddos-api/internal/services/refresh"
	"github.com/codegirl-007/kiddos-api/internal/services/settings"
	"github.com/codegirl-007/kiddos-api/internal/services/videos"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	ChannelService  channels.ChannelService
	VideoService    videos.VideoService
	Coordinator     refresh.RefreshCoordinator
	SettingsService settings.SettingsService
}
