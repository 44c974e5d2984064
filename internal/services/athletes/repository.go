package athletes

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

// Ensure Repository implements AthleteRepository interface
var _ AthleteRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAthleteByID(ctx context.Context, id uint) (*models.Athlete, error) {
	var athlete models.Athlete
	if err := r.db.WithContext(ctx).
		Preload("Appearances", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp_seconds ASC")
		}).
		Preload("Appearances.Video").
		First(&athlete, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("athlete", id)
		}
		return nil, fmt.Errorf("getting athlete: %w", err)
	}
	return &athlete, nil
}

// GetAthleteByName looks up an athlete by canonical display name,
// case-insensitively.
func (r *Repository) GetAthleteByName(ctx context.Context, name string) (*models.Athlete, error) {
	var athlete models.Athlete
	if err := r.db.WithContext(ctx).
		Where("LOWER(display_name) = LOWER(?)", name).
		First(&athlete).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("athlete", name)
		}
		return nil, fmt.Errorf("getting athlete by name: %w", err)
	}
	return &athlete, nil
}

func (r *Repository) ListAthletes(ctx context.Context) ([]models.Athlete, error) {
	var athletes []models.Athlete
	if err := r.db.WithContext(ctx).
		Order("display_name ASC").
		Find(&athletes).Error; err != nil {
		return nil, fmt.Errorf("listing athletes: %w", err)
	}
	return athletes, nil
}

// ListAthletesWithCounts returns every athlete joined with its appearance
// count. Used to build the search candidate set.
func (r *Repository) ListAthletesWithCounts(ctx context.Context) ([]AthleteWithCount, error) {
	var rows []AthleteWithCount
	if err := r.db.WithContext(ctx).
		Model(&models.Athlete{}).
		Select("athletes.id, athletes.display_name, athletes.aliases, athletes.from_roster, COUNT(athlete_appearances.id) AS appearance_count").
		Joins("LEFT JOIN athlete_appearances ON athlete_appearances.athlete_id = athletes.id AND athlete_appearances.deleted_at IS NULL").
		Group("athletes.id").
		Order("athletes.display_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing athletes with counts: %w", err)
	}
	return rows, nil
}

func (r *Repository) CreateAthlete(ctx context.Context, athlete *models.Athlete) error {
	if err := r.db.WithContext(ctx).Create(athlete).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Surface the duplicate as-is; the service resolves the race
			// with a second lookup.
			return fmt.Errorf("athlete %q: %w", athlete.DisplayName, gorm.ErrDuplicatedKey)
		}
		return fmt.Errorf("creating athlete: %w", err)
	}
	return nil
}

func (r *Repository) UpdateAthlete(ctx context.Context, athlete *models.Athlete) error {
	result := r.db.WithContext(ctx).Save(athlete)
	if result.Error != nil {
		return fmt.Errorf("updating athlete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("athlete", athlete.ID)
	}
	return nil
}

// AddAlias appends an alias to an athlete unless one already exists under
// case-insensitive comparison.
func (r *Repository) AddAlias(ctx context.Context, id uint, alias string) error {
	var athlete models.Athlete
	if err := r.db.WithContext(ctx).First(&athlete, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("athlete", id)
		}
		return fmt.Errorf("getting athlete: %w", err)
	}

	if athlete.HasAlias(alias) {
		return nil
	}

	athlete.Aliases = append(athlete.Aliases, alias)
	if err := r.db.WithContext(ctx).Model(&athlete).Update("aliases", athlete.Aliases).Error; err != nil {
		return fmt.Errorf("adding alias: %w", err)
	}
	return nil
}

func (r *Repository) DeleteAthlete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Athlete{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting athlete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("athlete", id)
	}
	return nil
}
