package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/spf13/cobra"

	"github.com/warpedwall/ninja-index/internal/database"
	"github.com/warpedwall/ninja-index/internal/models"
	athletesService "github.com/warpedwall/ninja-index/internal/services/athletes"
	"github.com/warpedwall/ninja-index/internal/services/roster"
	"github.com/warpedwall/ninja-index/pkg/config"
)

const linkThreshold = 85

var linkAuto bool

// linkCmd represents the link command
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link roster athletes to indexed athletes",
	Long: `Match known-roster athletes against the indexed athlete table.

Each unlinked roster entry is fuzzy-matched against indexed display names
and aliases. Confident matches record the athlete's database ID in the
roster file and add the roster name as an alias when it differs.

Without --auto every proposed link asks for confirmation.

Example:
  ninja-index link
  ninja-index link --auto`,
	RunE: runLink,
}

func init() {
	rootCmd.AddCommand(linkCmd)

	linkCmd.Flags().BoolVar(&linkAuto, "auto", false, "accept every match above the threshold without prompting")
}

func runLink(cmd *cobra.Command, args []string) error {
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

	registry := roster.NewRegistry(cfg.Roster.Path)
	entries, err := registry.Load()
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("Roster at %s is empty, nothing to link\n", cfg.Roster.Path)
		return nil
	}

	repo := athletesService.NewRepository(db.DB)
	indexed, err := repo.ListAthletes(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list athletes: %w", err)
	}
	if len(indexed) == 0 {
		fmt.Println("No indexed athletes yet, process some videos first")
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	linked := 0
	changed := false

	for i := range entries {
		entry := &entries[i]
		if entry.DBAthleteID != nil {
			continue
		}

		best, score := bestRosterMatch(entry, indexed)
		if best == nil || score < linkThreshold {
			continue
		}

		if !linkAuto {
			fmt.Printf("Link roster %q to indexed %q (score %d)? [y/N]: ", entry.FullName, best.DisplayName, score)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				continue
			}
		}

		id := best.ID
		entry.DBAthleteID = &id
		changed = true
		linked++

		if !strings.EqualFold(entry.FullName, best.DisplayName) && !best.HasAlias(entry.FullName) {
			if err := repo.AddAlias(cmd.Context(), best.ID, entry.FullName); err != nil {
				return fmt.Errorf("failed to add alias %q: %w", entry.FullName, err)
			}
		}
		if !best.FromRoster {
			best.FromRoster = true
			if err := repo.UpdateAthlete(cmd.Context(), best); err != nil {
				return fmt.Errorf("failed to flag athlete %d as rostered: %w", best.ID, err)
			}
		}

		fmt.Printf("Linked %q -> %q (id %d, score %d)\n", entry.FullName, best.DisplayName, best.ID, score)
	}

	if changed {
		if err := registry.Save(entries); err != nil {
			return fmt.Errorf("failed to save roster: %w", err)
		}
	}

	fmt.Printf("Linked %d roster athlete(s)\n", linked)
	return nil
}

// bestRosterMatch returns the indexed athlete most similar to a roster
// entry. First names weigh in because commentary often drops surnames.
func bestRosterMatch(entry *roster.Entry, indexed []models.Athlete) (*models.Athlete, int) {
	var best *models.Athlete
	bestScore := 0

	for i := range indexed {
		athlete := &indexed[i]
		score := nameScore(entry.FullName, athlete.DisplayName)
		for _, alias := range athlete.Aliases {
			if s := nameScore(entry.FullName, alias); s > score {
				score = s
			}
		}
		// A display name that is exactly the roster first name is a
		// strong signal on its own
		if entry.FirstName != "" && strings.EqualFold(athlete.DisplayName, entry.FirstName) {
			if s := fuzzy.Ratio(strings.ToLower(entry.FirstName), strings.ToLower(athlete.DisplayName)); s > score {
				score = s
			}
		}
		if score > bestScore {
			best = athlete
			bestScore = score
		}
	}
	return best, bestScore
}

func nameScore(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 100
	}
	score := fuzzy.Ratio(a, b)
	if s := fuzzy.TokenSetRatio(a, b); s > score {
		score = s
	}
	return score
}
