package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warpedwall/ninja-index/internal/database"
	"github.com/warpedwall/ninja-index/internal/models"
	videosService "github.com/warpedwall/ninja-index/internal/services/videos"
	"github.com/warpedwall/ninja-index/pkg/config"
	"github.com/warpedwall/ninja-index/pkg/youtube"
)

// backfillCmd represents the backfill command
var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Fill in missing metadata for indexed videos",
	Long: `Fetch title, channel, event name and upload date for videos that were
indexed without them. Only missing fields are filled; nothing is
re-extracted and existing values are never overwritten.

Example:
  ninja-index backfill`,
	RunE: runBackfill,
}

func init() {
	rootCmd.AddCommand(backfillCmd)
}

func runBackfill(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	db, err := database.Initialize(cfg.Database.Path, verbose || cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := videosService.NewRepository(db.DB)
	fetcher := youtube.NewMetadataClient(youtube.MetadataClientConfig{
		BaseURL: cfg.YouTube.BaseURL,
		Timeout: cfg.YouTube.Timeout,
	})

	rows, err := repo.ListVideosWithCounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list videos: %w", err)
	}
	fmt.Printf("Found %d video(s) to check.\n", len(rows))

	updated := 0
	for _, row := range rows {
		if row.Title != "" && row.EventDate != nil && row.ChannelName != "" {
			fmt.Printf("  [%s] already has metadata, skipping.\n", row.YouTubeID)
			continue
		}

		video, err := repo.GetVideoByID(cmd.Context(), row.ID)
		if err != nil {
			return fmt.Errorf("failed to load video %d: %w", row.ID, err)
		}

		fmt.Printf("  [%s] fetching metadata...\n", video.YouTubeID)
		meta := fetcher.FetchMetadata(cmd.Context(), video.YouTubeID)
		if !applyMetadata(video, meta) {
			fmt.Printf("  [%s] nothing new from upstream.\n", video.YouTubeID)
			continue
		}

		if err := repo.UpdateVideo(cmd.Context(), video); err != nil {
			return fmt.Errorf("failed to update video %s: %w", video.YouTubeID, err)
		}
		updated++
	}

	fmt.Printf("Done. Updated %d video(s).\n", updated)
	return nil
}

// applyMetadata fills a video's missing fields from fetched metadata and
// reports whether anything changed. Existing values are never overwritten.
func applyMetadata(video *models.Video, meta *youtube.Metadata) bool {
	changed := false
	if video.Title == "" && meta.Title != "" {
		video.Title = meta.Title
		changed = true
	}
	if video.EventName == "" && meta.Title != "" {
		if parsed := youtube.EventNameFromTitle(meta.Title); parsed != "" {
			video.EventName = parsed
			changed = true
		}
	}
	if video.EventDate == nil && meta.UploadDate != nil {
		video.EventDate = meta.UploadDate
		changed = true
	}
	if video.ChannelName == "" && meta.ChannelName != "" {
		video.ChannelName = meta.ChannelName
		changed = true
	}
	return changed
}
