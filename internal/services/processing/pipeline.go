package processing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/warpedwall/ninja-index/internal/models"
	"github.com/warpedwall/ninja-index/internal/services/appearances"
	"github.com/warpedwall/ninja-index/internal/services/videos"
	"github.com/warpedwall/ninja-index/pkg/youtube"
)

// Service runs the full pipeline for a single video: fetch the transcript,
// extract athlete mentions, resolve each name against the athlete store and
// persist the resulting appearances.
type Service struct {
	transcripts     TranscriptFetcher
	extractor       AppearanceExtractor
	resolver        AthleteResolver
	videoRepo       videos.VideoRepository
	appearanceRepo  appearances.AppearanceRepository
	metadataFetcher MetadataFetcher
}

var _ ProcessingService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithMetadataFetcher enables metadata enrichment for videos submitted
// without a title
func WithMetadataFetcher(fetcher MetadataFetcher) ServiceOption {
	return func(s *Service) {
		s.metadataFetcher = fetcher
	}
}

// NewService creates a new processing service
func NewService(
	transcripts TranscriptFetcher,
	extractor AppearanceExtractor,
	resolver AthleteResolver,
	videoRepo videos.VideoRepository,
	appearanceRepo appearances.AppearanceRepository,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		transcripts:    transcripts,
		extractor:      extractor,
		resolver:       resolver,
		videoRepo:      videoRepo,
		appearanceRepo: appearanceRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs the pipeline for one video. Outcomes a caller can act on
// (missing captions, a transcript the extractor cannot analyze) come back
// as a failed Result with a reason; only infrastructure problems return a
// non-nil error. Reprocessing an already-indexed video without Force is a
// no-op reported as already_processed.
func (s *Service) Process(ctx context.Context, req Request) (*Result, error) {
	videoID, err := youtube.ExtractVideoID(req.URLOrID)
	if err != nil {
		return nil, fmt.Errorf("parsing video reference: %w", err)
	}

	result := &Result{YouTubeID: videoID, Status: StatusFailed}

	// Idempotency check comes before any network call
	existing, err := s.videoRepo.GetVideoByYouTubeID(ctx, videoID)
	if err != nil && !videos.IsNotFound(err) {
		return nil, fmt.Errorf("checking for existing video: %w", err)
	}
	if existing != nil && !req.Force {
		log.Printf("[DEBUG] video %s already processed at %s, skipping", videoID, existing.ProcessedAt.Format(time.RFC3339))
		athleteCount, err := s.appearanceRepo.DistinctAthleteCountByVideo(ctx, existing.ID)
		if err != nil {
			return nil, fmt.Errorf("counting indexed athletes: %w", err)
		}
		rowCount, err := s.appearanceRepo.CountByVideo(ctx, existing.ID)
		if err != nil {
			return nil, fmt.Errorf("counting indexed appearances: %w", err)
		}
		result.VideoID = existing.ID
		result.Title = existing.Title
		result.Status = StatusAlreadyProcessed
		result.AthletesFound = int(athleteCount)
		// Prior rows are reported as skipped: nothing new was written
		result.AppearancesSkipped = int(rowCount)
		return result, nil
	}

	transcript, err := s.transcripts.FetchTranscript(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrNoTranscript) ||
			errors.Is(err, youtube.ErrTranscriptsDenied) ||
			errors.Is(err, youtube.ErrVideoUnavailable) {
			result.Reason = ReasonNoTranscript
			result.Message = err.Error()
			return result, nil
		}
		return nil, fmt.Errorf("fetching transcript for %s: %w", videoID, err)
	}

	transcriptText := transcript.TextWithTimestamps()
	extracted, err := s.extractor.Extract(ctx, transcriptText, videoID)
	if err != nil {
		result.Reason = ReasonExtractionFailed
		result.Message = err.Error()
		return result, nil
	}
	result.CandidatesSkipped = extracted.Skipped

	video, created, err := s.upsertVideo(ctx, existing, videoID, transcriptText, req)
	if err != nil {
		result.Reason = ReasonPersistenceFailed
		result.Message = err.Error()
		return result, err
	}
	result.VideoID = video.ID
	result.Title = video.Title

	seen := make(map[uint]struct{})
	for _, appearance := range extracted.Appearances {
		athlete, err := s.resolver.ResolveOrCreate(ctx, appearance.Name)
		if err != nil {
			result.Reason = ReasonPersistenceFailed
			result.Message = err.Error()
			return result, fmt.Errorf("resolving athlete %q: %w", appearance.Name, err)
		}
		seen[athlete.ID] = struct{}{}

		exists, err := s.appearanceRepo.Exists(ctx, video.ID, athlete.ID, appearance.TimestampSeconds)
		if err != nil {
			result.Reason = ReasonPersistenceFailed
			result.Message = err.Error()
			return result, fmt.Errorf("checking appearance: %w", err)
		}
		if exists {
			result.AppearancesSkipped++
			continue
		}

		row := &models.AthleteAppearance{
			AthleteID:        athlete.ID,
			VideoID:          video.ID,
			TimestampSeconds: appearance.TimestampSeconds,
			Confidence:       appearance.Confidence,
			RawName:          appearance.Name,
		}
		if err := s.appearanceRepo.CreateAppearance(ctx, row); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Concurrent run inserted the same triple
				result.AppearancesSkipped++
				continue
			}
			result.Reason = ReasonPersistenceFailed
			result.Message = err.Error()
			return result, fmt.Errorf("saving appearance: %w", err)
		}
		result.AppearancesCreated++
	}

	result.AthletesFound = len(seen)
	if created {
		result.Status = StatusCreated
	} else {
		result.Status = StatusUpdated
	}
	result.Reason = ""
	result.Message = ""
	log.Printf("[DEBUG] processed video %s: %d athletes, %d appearances created, %d skipped",
		videoID, result.AthletesFound, result.AppearancesCreated, result.AppearancesSkipped)
	return result, nil
}

// upsertVideo persists the video row, reusing an existing row on forced
// reprocessing and resolving a concurrent-create race by a second lookup.
// The returned bool reports whether a new row was created.
func (s *Service) upsertVideo(ctx context.Context, existing *models.Video, videoID, transcriptText string, req Request) (*models.Video, bool, error) {
	video := existing
	if video == nil {
		video = &models.Video{YouTubeID: videoID}
	}

	video.TranscriptRaw = transcriptText
	video.ProcessedAt = time.Now().UTC()
	if req.Title != "" {
		video.Title = req.Title
	}
	if req.EventName != "" {
		video.EventName = req.EventName
	}
	if req.EventDate != nil {
		video.EventDate = req.EventDate
	}

	if video.Title == "" && s.metadataFetcher != nil {
		meta := s.metadataFetcher.FetchMetadata(ctx, videoID)
		video.Title = meta.Title
		video.ChannelName = meta.ChannelName
		if video.EventName == "" {
			video.EventName = youtube.EventNameFromTitle(meta.Title)
		}
		if video.EventDate == nil {
			video.EventDate = meta.UploadDate
		}
	}

	if existing != nil {
		if err := s.videoRepo.UpdateVideo(ctx, video); err != nil {
			return nil, false, fmt.Errorf("updating video: %w", err)
		}
		return video, false, nil
	}

	if err := s.videoRepo.CreateVideo(ctx, video); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race; the winner's row is authoritative
			winner, lookupErr := s.videoRepo.GetVideoByYouTubeID(ctx, videoID)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("resolving video create race: %w", lookupErr)
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("creating video: %w", err)
	}
	return video, true, nil
}
