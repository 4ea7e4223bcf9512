package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codegirl-007/kiddos-api/internal/models"
)

// ErrSettingNotFound indicates the requested key has no row
var ErrSettingNotFound = errors.New("setting not found")

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements SettingRepository interface
var _ SettingRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, key)
		}
		return nil, fmt.Errorf("getting setting %s: %w", key, err)
	}
	return &setting, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func (r *Repository) CompareAndSwap(ctx context.Context, key, old, new string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Setting{}).
		Where("key = ? AND value = ?", key, old).
		Updates(map[string]any{"value": new, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return false, fmt.Errorf("swapping setting %s: %w", key, result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *Repository) EnsureDefaults(ctx context.Context, defaults map[string]string) error {
	now := time.Now().UTC()
	for key, value := range defaults {
		setting := models.Setting{Key: key, Value: value, UpdatedAt: now}
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&setting).Error
		if err != nil {
			return fmt.Errorf("seeding setting %s: %w", key, err)
		}
	}
	return nil
}
