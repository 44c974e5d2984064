package athletes

import (
	"context"

	"gorm.io/datatypes"

	"github.com/warpedwall/ninja-index/internal/models"
)

// AthleteWithCount is an athlete row joined with its appearance count
type AthleteWithCount struct {
	ID              uint                        `json:"id"`
	DisplayName     string                      `json:"display_name"`
	Aliases         datatypes.JSONSlice[string] `json:"aliases"`
	FromRoster      bool                        `json:"from_roster"`
	AppearanceCount int                         `json:"appearance_count"`
}

// AthleteRepository defines the interface for athlete data persistence
type AthleteRepository interface {
	// Read operations
	GetAthleteByID(ctx context.Context, id uint) (*models.Athlete, error)
	GetAthleteByName(ctx context.Context, name string) (*models.Athlete, error)
	ListAthletes(ctx context.Context) ([]models.Athlete, error)
	ListAthletesWithCounts(ctx context.Context) ([]AthleteWithCount, error)

	// Write operations
	CreateAthlete(ctx context.Context, athlete *models.Athlete) error
	UpdateAthlete(ctx context.Context, athlete *models.Athlete) error
	AddAlias(ctx context.Context, id uint, alias string) error

	// Delete operations (admin only; cascades to appearances)
	DeleteAthlete(ctx context.Context, id uint) error
}

// AthleteService defines the identity resolution business logic
type AthleteService interface {
	// ResolveOrCreate maps a raw name string onto a canonical athlete
	// identity: exact display-name match, then alias match, then create.
	ResolveOrCreate(ctx context.Context, rawName string) (*models.Athlete, error)

	GetAthleteByID(ctx context.Context, id uint) (*models.Athlete, error)
	AddAlias(ctx context.Context, id uint, alias string) error
}
