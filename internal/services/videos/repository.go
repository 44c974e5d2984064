package videos

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

// Ensure Repository implements VideoRepository interface
var _ VideoRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetVideoByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).
		Preload("Appearances", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp_seconds ASC")
		}).
		Preload("Appearances.Athlete").
		First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

func (r *Repository) GetVideoByYouTubeID(ctx context.Context, youtubeID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).
		Where("you_tube_id = ?", youtubeID).
		First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(youtubeID)
		}
		return nil, fmt.Errorf("getting video by youtube id: %w", err)
	}
	return &video, nil
}

// ListVideosWithCounts returns all videos newest-first, each with its
// distinct athlete count.
func (r *Repository) ListVideosWithCounts(ctx context.Context) ([]VideoWithCount, error) {
	var rows []VideoWithCount
	if err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Select("videos.id, videos.you_tube_id AS you_tube_id, videos.title, videos.event_name, videos.event_date, videos.channel_name, videos.processed_at, COUNT(DISTINCT athlete_appearances.athlete_id) AS athlete_count").
		Joins("LEFT JOIN athlete_appearances ON athlete_appearances.video_id = videos.id AND athlete_appearances.deleted_at IS NULL").
		Group("videos.id").
		Order("videos.processed_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}
	return rows, nil
}

func (r *Repository) CreateVideo(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent run won the insert; caller resolves via lookup
			return fmt.Errorf("video %s: %w", video.YouTubeID, gorm.ErrDuplicatedKey)
		}
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

func (r *Repository) UpdateVideo(ctx context.Context, video *models.Video) error {
	result := r.db.WithContext(ctx).Save(video)
	if result.Error != nil {
		return fmt.Errorf("updating video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(video.ID)
	}
	return nil
}

func (r *Repository) DeleteVideo(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Video{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(id)
	}
	return nil
}
