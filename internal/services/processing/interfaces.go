package processing

import (
	"context"
	"time"

	"github.com/warpedwall/ninja-index/internal/models"
	"github.com/warpedwall/ninja-index/internal/services/extraction"
	"github.com/warpedwall/ninja-index/pkg/youtube"
)

// TranscriptFetcher retrieves a video's caption transcript
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string) (*youtube.Transcript, error)
}

// MetadataFetcher enriches a video with public metadata. Implementations
// never fail hard; missing fields stay empty.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, videoID string) *youtube.Metadata
}

// AppearanceExtractor pulls athlete mentions out of transcript text
type AppearanceExtractor interface {
	Extract(ctx context.Context, transcriptText, videoID string) (*extraction.Result, error)
}

// AthleteResolver maps an extracted name onto a stored athlete,
// creating one when no display name or alias matches
type AthleteResolver interface {
	ResolveOrCreate(ctx context.Context, rawName string) (*models.Athlete, error)
}

// ProcessingService runs the transcript-to-index pipeline for one video
type ProcessingService interface {
	Process(ctx context.Context, req Request) (*Result, error)
}

// Request describes one video to process. Title, EventName and EventDate
// are optional operator overrides; anything left empty may be filled from
// fetched metadata.
type Request struct {
	URLOrID   string
	Title     string
	EventName string
	EventDate *time.Time
	Force     bool
}
