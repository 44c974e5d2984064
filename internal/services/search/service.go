package search

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/warpedwall/ninja-index/internal/services/athletes"
	"github.com/warpedwall/ninja-index/internal/services/roster"
)

// Defaults for interactive search
const (
	DefaultLimit          = 10
	DefaultThreshold      = 45
	DefaultMinQueryLength = 2
)

// SearchService defines the interactive suggestion lookup
type SearchService interface {
	Search(ctx context.Context, query string, limit int) ([]Match, error)
}

// Service ranks athlete name suggestions against indexed athletes and the
// known roster
type Service struct {
	repository     athletes.AthleteRepository
	registry       *roster.Registry
	limit          int
	threshold      int
	minQueryLength int
}

var _ SearchService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithLimit sets the default top-K cutoff
func WithLimit(limit int) ServiceOption {
	return func(s *Service) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithThreshold sets the minimum similarity score to include
func WithThreshold(threshold int) ServiceOption {
	return func(s *Service) {
		if threshold >= 0 && threshold <= 100 {
			s.threshold = threshold
		}
	}
}

// WithMinQueryLength sets the shortest query that hits the store
func WithMinQueryLength(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.minQueryLength = n
		}
	}
}

// NewService creates a new search service
func NewService(repository athletes.AthleteRepository, registry *roster.Registry, opts ...ServiceOption) *Service {
	s := &Service{
		repository:     repository,
		registry:       registry,
		limit:          DefaultLimit,
		threshold:      DefaultThreshold,
		minQueryLength: DefaultMinQueryLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns ranked suggestions for a partial, possibly misspelled
// query. Queries below the minimum length return an empty result without
// touching the store. An unmatched query is a normal empty result, never an
// error.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	if utf8.RuneCountInString(query) < s.minQueryLength {
		return []Match{}, nil
	}
	if limit <= 0 {
		limit = s.limit
	}

	indexed, err := s.repository.ListAthletesWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading search candidates: %w", err)
	}

	var known []roster.Entry
	if s.registry != nil {
		known, err = s.registry.Load()
		if err != nil {
			// A broken roster file should not take search down
			log.Printf("[WARN] failed to load known-athletes roster: %v", err)
		}
	}

	candidates := BuildCandidates(indexed, known)
	return Rank(query, candidates, limit, s.threshold), nil
}
