package channels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codegirl-007/kiddos-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ChannelRepository interface
var _ ChannelRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateChannel(ctx context.Context, channel *models.Channel) error {
	if err := r.db.WithContext(ctx).Create(channel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrChannelExists, channel.ID)
		}
		return fmt.Errorf("creating channel: %w", err)
	}
	return nil
}

func (r *Repository) GetChannelByID(ctx context.Context, id string) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&channel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, fmt.Errorf("getting channel: %w", err)
	}
	return &channel, nil
}

func (r *Repository) ListChannels(ctx context.Context) ([]models.Channel, error) {
	var channels []models.Channel
	if err := r.db.WithContext(ctx).
		Preload("CacheEntry").
		Order("name ASC").
		Find(&channels).Error; err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	return channels, nil
}

func (r *Repository) ListChannelIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Channel{}).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("listing channel ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) UpdateChannel(ctx context.Context, channel *models.Channel) error {
	result := r.db.WithContext(ctx).Save(channel)
	if result.Error != nil {
		return fmt.Errorf("updating channel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(channel.ID)
	}
	return nil
}

func (r *Repository) DeleteChannel(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Channel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting channel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(id)
	}
	return nil
}

func (r *Repository) GetCacheEntry(ctx context.Context, channelID string) (*models.ChannelCacheEntry, error) {
	var entry models.ChannelCacheEntry
	if err := r.db.WithContext(ctx).Where("channel_id = ?", channelID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absence means the channel has never been fetched
			return nil, nil
		}
		return nil, fmt.Errorf("getting cache entry: %w", err)
	}
	return &entry, nil
}

func (r *Repository) UpsertCacheEntry(ctx context.Context, entry *models.ChannelCacheEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_fetched_at", "last_error", "total_results", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("upserting cache entry: %w", err)
	}
	return nil
}

func (r *Repository) CacheSummary(ctx context.Context) (int64, int64, *time.Time, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Channel{}).Count(&total).Error; err != nil {
		return 0, 0, nil, fmt.Errorf("counting channels: %w", err)
	}

	var fetched int64
	if err := r.db.WithContext(ctx).
		Model(&models.ChannelCacheEntry{}).
		Where("last_fetched_at IS NOT NULL").
		Count(&fetched).Error; err != nil {
		return 0, 0, nil, fmt.Errorf("counting cache entries: %w", err)
	}

	var oldest *time.Time
	if fetched > 0 {
		var row struct{ Oldest *time.Time }
		if err := r.db.WithContext(ctx).
			Model(&models.ChannelCacheEntry{}).
			Select("MIN(last_fetched_at) AS oldest").
			Where("last_fetched_at IS NOT NULL").
			Scan(&row).Error; err != nil {
			return 0, 0, nil, fmt.Errorf("finding oldest fetch: %w", err)
		}
		oldest = row.Oldest
	}

	return total, fetched, oldest, nil
}
