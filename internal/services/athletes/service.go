package athletes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/warpedwall/ninja-index/internal/models"
)

// Service implements the AthleteService interface
type Service struct {
	repository AthleteRepository
}

var _ AthleteService = (*Service)(nil)

// NewService creates a new athlete service
func NewService(repository AthleteRepository) *Service {
	return &Service{repository: repository}
}

// ResolveOrCreate maps a raw name extracted from a transcript onto a
// canonical athlete. Matching is case-insensitive against display names and
// aliases; the canonical display form is never rewritten from a raw mention.
// When nothing matches, a new athlete is created with the first-seen form.
func (s *Service) ResolveOrCreate(ctx context.Context, rawName string) (*models.Athlete, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}

	// Exact match on canonical display name
	athlete, err := s.repository.GetAthleteByName(ctx, name)
	if err == nil {
		return athlete, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	// Exact match against any athlete's alias set. The roster is small
	// enough that a linear scan is fine here; the fuzzy machinery is
	// deliberately reserved for interactive search.
	if athlete, err := s.findByAlias(ctx, name); err != nil {
		return nil, err
	} else if athlete != nil {
		return athlete, nil
	}

	// No match: create with the raw name as the canonical first-seen form
	athlete = &models.Athlete{DisplayName: name}
	if err := s.repository.CreateAthlete(ctx, athlete); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent create race; the winner's row is the identity
			log.Printf("[DEBUG] duplicate create race for athlete %q, retrying lookup", name)
			return s.repository.GetAthleteByName(ctx, name)
		}
		return nil, fmt.Errorf("creating athlete %q: %w", name, err)
	}

	return athlete, nil
}

func (s *Service) findByAlias(ctx context.Context, name string) (*models.Athlete, error) {
	all, err := s.repository.ListAthletes(ctx)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(name)
	for i := range all {
		for _, alias := range all[i].Aliases {
			if strings.ToLower(alias) == normalized {
				return &all[i], nil
			}
		}
	}
	return nil, nil
}

func (s *Service) GetAthleteByID(ctx context.Context, id uint) (*models.Athlete, error) {
	return s.repository.GetAthleteByID(ctx, id)
}

func (s *Service) AddAlias(ctx context.Context, id uint, alias string) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return NewValidationError("alias", "must not be empty")
	}
	return s.repository.AddAlias(ctx, id, alias)
}
