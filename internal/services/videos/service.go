package videos

import (
	"context"
	"fmt"

	"github.com/warpedwall/ninja-index/internal/models"
	"github.com/warpedwall/ninja-index/internal/services/appearances"
)

// Service implements the VideoService interface
type Service struct {
	repository     VideoRepository
	appearanceRepo appearances.AppearanceRepository
}

var _ VideoService = (*Service)(nil)

// NewService creates a new video service
func NewService(repository VideoRepository, appearanceRepo appearances.AppearanceRepository) *Service {
	return &Service{repository: repository, appearanceRepo: appearanceRepo}
}

func (s *Service) GetVideoByID(ctx context.Context, id uint) (*models.Video, error) {
	return s.repository.GetVideoByID(ctx, id)
}

func (s *Service) ListVideosWithCounts(ctx context.Context) ([]VideoWithCount, error) {
	return s.repository.ListVideosWithCounts(ctx)
}

// DeleteVideo removes a video and its appearances. Appearances are deleted
// explicitly; cascade enforcement is a store setting this path does not
// assume.
func (s *Service) DeleteVideo(ctx context.Context, id uint) error {
	if _, err := s.repository.GetVideoByID(ctx, id); err != nil {
		return err
	}
	if err := s.appearanceRepo.DeleteByVideo(ctx, id); err != nil {
		return fmt.Errorf("deleting appearances for video %d: %w", id, err)
	}
	return s.repository.DeleteVideo(ctx, id)
}
