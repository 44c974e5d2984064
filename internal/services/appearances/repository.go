package appearances

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/warpedwall/ninja-index/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements AppearanceRepository interface
var _ AppearanceRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Exists(ctx context.Context, videoID, athleteID uint, timestampSeconds int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AthleteAppearance{}).
		Where("video_id = ? AND athlete_id = ? AND timestamp_seconds = ?", videoID, athleteID, timestampSeconds).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking appearance existence: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) CreateAppearance(ctx context.Context, appearance *models.AthleteAppearance) error {
	if err := r.db.WithContext(ctx).Create(appearance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Same (video, athlete, timestamp) triple already recorded
			return fmt.Errorf("appearance video=%d athlete=%d ts=%d: %w",
				appearance.VideoID, appearance.AthleteID, appearance.TimestampSeconds, gorm.ErrDuplicatedKey)
		}
		return fmt.Errorf("creating appearance: %w", err)
	}
	return nil
}

func (r *Repository) ListByVideo(ctx context.Context, videoID uint) ([]models.AthleteAppearance, error) {
	var rows []models.AthleteAppearance
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("timestamp_seconds ASC").
		Preload("Athlete").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing appearances: %w", err)
	}
	return rows, nil
}

func (r *Repository) CountByVideo(ctx context.Context, videoID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AthleteAppearance{}).
		Where("video_id = ?", videoID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting appearances: %w", err)
	}
	return count, nil
}

func (r *Repository) DistinctAthleteCountByVideo(ctx context.Context, videoID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AthleteAppearance{}).
		Where("video_id = ?", videoID).
		Distinct("athlete_id").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting distinct athletes: %w", err)
	}
	return count, nil
}

func (r *Repository) SetVerified(ctx context.Context, id uint, verified bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.AthleteAppearance{}).
		Where("id = ?", id).
		Update("verified", verified)
	if result.Error != nil {
		return fmt.Errorf("updating appearance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(id)
	}
	return nil
}

func (r *Repository) DeleteByVideo(ctx context.Context, videoID uint) error {
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.AthleteAppearance{}).Error; err != nil {
		return fmt.Errorf("deleting appearances: %w", err)
	}
	return nil
}
