package appearances

import (
	"context"

	"github.com/warpedwall/ninja-index/internal/models"
)

// AppearanceRepository defines the interface for appearance persistence
type AppearanceRepository interface {
	// Exists reports whether a video already records the athlete at the
	// given timestamp
	Exists(ctx context.Context, videoID, athleteID uint, timestampSeconds int) (bool, error)

	// CreateAppearance inserts a single appearance row. Inserting a row
	// that collides with an existing (video, athlete, timestamp) triple
	// returns gorm.ErrDuplicatedKey wrapped.
	CreateAppearance(ctx context.Context, appearance *models.AthleteAppearance) error

	// ListByVideo returns a video's appearances ordered by timestamp
	ListByVideo(ctx context.Context, videoID uint) ([]models.AthleteAppearance, error)

	// CountByVideo returns the number of appearance rows for a video
	CountByVideo(ctx context.Context, videoID uint) (int64, error)

	// DistinctAthleteCountByVideo returns how many different athletes a
	// video references
	DistinctAthleteCountByVideo(ctx context.Context, videoID uint) (int64, error)

	// SetVerified flips the human-review flag on an appearance
	SetVerified(ctx context.Context, id uint, verified bool) error

	// DeleteByVideo removes all appearances belonging to a video
	DeleteByVideo(ctx context.Context, videoID uint) error
}
