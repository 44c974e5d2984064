package videos

import (
	"context"
	"time"

	"github.com/warpedwall/ninja-index/internal/models"
)

// VideoWithCount is a video row joined with its distinct athlete count
type VideoWithCount struct {
	ID           uint       `json:"id"`
	YouTubeID    string     `json:"youtube_id"`
	Title        string     `json:"title"`
	EventName    string     `json:"event_name"`
	EventDate    *time.Time `json:"event_date"`
	ChannelName  string     `json:"channel_name"`
	ProcessedAt  time.Time  `json:"processed_at"`
	AthleteCount int        `json:"athlete_count"`
}

// VideoRepository defines the interface for video data persistence
type VideoRepository interface {
	// Read operations
	GetVideoByID(ctx context.Context, id uint) (*models.Video, error)
	GetVideoByYouTubeID(ctx context.Context, youtubeID string) (*models.Video, error)
	ListVideosWithCounts(ctx context.Context) ([]VideoWithCount, error)

	// Write operations
	CreateVideo(ctx context.Context, video *models.Video) error
	UpdateVideo(ctx context.Context, video *models.Video) error

	// Delete operations (admin only; cascades to appearances)
	DeleteVideo(ctx context.Context, id uint) error
}

// VideoService defines the business logic interface for video queries and
// admin removal
type VideoService interface {
	GetVideoByID(ctx context.Context, id uint) (*models.Video, error)
	ListVideosWithCounts(ctx context.Context) ([]VideoWithCount, error)
	DeleteVideo(ctx context.Context, id uint) error
}
