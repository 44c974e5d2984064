package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/warpedwall/ninja-index/internal/database"
	"github.com/warpedwall/ninja-index/internal/models"
	"github.com/warpedwall/ninja-index/internal/services/appearances"
	athletesService "github.com/warpedwall/ninja-index/internal/services/athletes"
	"github.com/warpedwall/ninja-index/internal/services/extraction"
	processingService "github.com/warpedwall/ninja-index/internal/services/processing"
	videosService "github.com/warpedwall/ninja-index/internal/services/videos"
	"github.com/warpedwall/ninja-index/pkg/config"
	"github.com/warpedwall/ninja-index/pkg/youtube"
)

var (
	processTitle     string
	processEventName string
	processEventDate string
	processForce     bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <url-or-id>",
	Short: "Process a YouTube video into the index",
	Long: `Fetch a video's transcript, extract athlete appearances and store them.

Already-processed videos are skipped unless --force is given. Forced
reprocessing reuses the existing video row and never duplicates
appearances.

Example:
  ninja-index process https://www.youtube.com/watch?v=dQw4w9WgXcQ
  ninja-index process dQw4w9WgXcQ --title "ANW Season 15 Finals" --date 2023-09-11
  ninja-index process dQw4w9WgXcQ --force`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&processTitle, "title", "", "video title (skips metadata lookup)")
	processCmd.Flags().StringVar(&processEventName, "event", "", "competition event name")
	processCmd.Flags().StringVar(&processEventDate, "date", "", "event date (YYYY-MM-DD)")
	processCmd.Flags().BoolVar(&processForce, "force", false, "reprocess even if already indexed")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var eventDate *time.Time
	if processEventDate != "" {
		parsed, err := time.Parse("2006-01-02", processEventDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", processEventDate)
		}
		eventDate = &parsed
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

	service := buildProcessingService(db, cfg)

	result, err := service.Process(cmd.Context(), processingService.Request{
		URLOrID:   args[0],
		Title:     processTitle,
		EventName: processEventName,
		EventDate: eventDate,
		Force:     processForce,
	})
	if err != nil {
		return err
	}

	switch result.Status {
	case processingService.StatusAlreadyProcessed:
		fmt.Printf("Video %s already processed (%d athletes indexed). Use --force to reprocess.\n",
			result.YouTubeID, result.AthletesFound)
	case processingService.StatusFailed:
		return fmt.Errorf("processing failed (%s): %s", result.Reason, result.Message)
	default:
		fmt.Printf("Processed %s (%s)\n", result.Title, result.YouTubeID)
		fmt.Printf("  athletes found:      %d\n", result.AthletesFound)
		fmt.Printf("  appearances created: %d\n", result.AppearancesCreated)
		fmt.Printf("  appearances skipped: %d\n", result.AppearancesSkipped)
		if result.CandidatesSkipped > 0 {
			fmt.Printf("  malformed entries:   %d\n", result.CandidatesSkipped)
		}
	}
	return nil
}

// buildProcessingService wires the pipeline the same way the HTTP server does
func buildProcessingService(db *database.DB, cfg *config.Config) *processingService.Service {
	transcripts := youtube.NewClient(youtube.ClientConfig{
		BaseURL:   cfg.YouTube.BaseURL,
		Timeout:   cfg.YouTube.Timeout,
		Languages: cfg.YouTube.Languages,
	})
	extractor := extraction.NewClient(extraction.Config{
		APIKey:    cfg.Anthropic.APIKey,
		Model:     cfg.Anthropic.Model,
		MaxTokens: cfg.Anthropic.MaxTokens,
		BaseURL:   cfg.Anthropic.BaseURL,
		Timeout:   cfg.Anthropic.Timeout,
	})
	resolver := athletesService.NewService(athletesService.NewRepository(db.DB))

	opts := []processingService.ServiceOption{}
	if cfg.Processing.FetchMetadata {
		opts = append(opts, processingService.WithMetadataFetcher(
			youtube.NewMetadataClient(youtube.MetadataClientConfig{
				BaseURL: cfg.YouTube.BaseURL,
				Timeout: cfg.YouTube.Timeout,
			}),
		))
	}

	return processingService.NewService(
		transcripts,
		extractor,
		resolver,
		videosService.NewRepository(db.DB),
		appearances.NewRepository(db.DB),
		opts...,
	)
}
