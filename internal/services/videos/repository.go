package videos

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/codegirl-007/kiddos-api/internal/models"
)

// DefaultMinDurationSeconds is the product policy floor: shorter videos
// never appear in listings.
const DefaultMinDurationSeconds = 600

type Repository struct {
	db *gorm.DB
	// minDurationSeconds is baked into every listing query
	minDurationSeconds int
}

// Ensure Repository implements VideoRepository interface
var _ VideoRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB, minDurationSeconds int) *Repository {
	if minDurationSeconds < 0 {
		minDurationSeconds = DefaultMinDurationSeconds
	}
	return &Repository{db: db, minDurationSeconds: minDurationSeconds}
}

func (r *Repository) ListVideos(ctx context.Context, params ListParams) ([]models.Video, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("duration_seconds >= ?", r.minDurationSeconds)

	if params.ChannelID != "" {
		query = query.Where("channel_id = ?", params.ChannelID)
	}
	if params.Search != "" {
		like := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting videos: %w", err)
	}

	switch params.Sort {
	case SortOldest:
		query = query.Order("published_at ASC")
	case SortPopular:
		query = query.Order("view_count DESC")
	default:
		query = query.Order("published_at DESC")
	}

	offset := (params.Page - 1) * params.Limit

	var videos []models.Video
	if err := query.Limit(params.Limit).Offset(offset).Find(&videos).Error; err != nil {
		return nil, 0, fmt.Errorf("listing videos: %w", err)
	}

	return videos, total, nil
}

func (r *Repository) ReplaceChannelVideos(ctx context.Context, channelID string, videos []models.Video) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", channelID).Delete(&models.Video{}).Error; err != nil {
			return fmt.Errorf("deleting cached videos: %w", err)
		}
		if len(videos) > 0 {
			if err := tx.CreateInBatches(videos, 50).Error; err != nil {
				return fmt.Errorf("inserting cached videos: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replacing videos for channel %s: %w", channelID, err)
	}
	return nil
}

func (r *Repository) GetVideosByChannelID(ctx context.Context, channelID string) ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("published_at DESC").
		Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("getting videos for channel: %w", err)
	}
	return videos, nil
}
