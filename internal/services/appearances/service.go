package appearances

import "context"

// AppearanceService defines the business logic interface for appearance
// review
type AppearanceService interface {
	// SetVerified marks an appearance as human-reviewed (or clears the mark)
	SetVerified(ctx context.Context, id uint, verified bool) error
}

// Service implements the AppearanceService interface
type Service struct {
	repository AppearanceRepository
}

var _ AppearanceService = (*Service)(nil)

// NewService creates a new appearance service
func NewService(repository AppearanceRepository) *Service {
	return &Service{repository: repository}
}

func (s *Service) SetVerified(ctx context.Context, id uint, verified bool) error {
	return s.repository.SetVerified(ctx, id, verified)
}
