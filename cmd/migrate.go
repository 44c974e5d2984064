package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warpedwall/ninja-index/internal/database"
	"github.com/warpedwall/ninja-index/internal/models"
	"github.com/warpedwall/ninja-index/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the Ninja Index database schema.

Available subcommands:
  up      - Apply the schema to the configured database
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema",
	Long: `Create or update the athlete, video and appearance tables.

Migration is additive: existing data is preserved.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Println("Database schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	migrator := db.DB.Migrator()
	for _, model := range models.All() {
		state := "missing"
		if migrator.HasTable(model) {
			state = "present"
		}
		fmt.Printf("%-25T %s\n", model, state)
	}
	return nil
}

func openDatabase(cmd *cobra.Command) (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	db, err := database.Initialize(cfg.Database.Path, verbose || cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}
