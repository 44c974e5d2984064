package search

import (
	"github.com/warpedwall/ninja-index/internal/services/athletes"
	"github.com/warpedwall/ninja-index/internal/services/roster"
)

// Candidate provenance tags
const (
	SourceIndexed = "indexed" // athlete has rows in the store
	SourceRoster  = "roster"  // known-roster entry with no indexed appearances
)

// Candidate is a single searchable name: a canonical display name, an alias,
// or an unlinked roster entry.
type Candidate struct {
	Name            string // the string being matched against
	AthleteID       *uint  // nil for unlinked roster entries
	DisplayName     string
	Source          string
	AppearanceCount int
}

// BuildCandidates flattens indexed athletes (display name plus every alias)
// and roster entries into one candidate list. Roster entries already linked
// to an indexed athlete are skipped to avoid duplicate hits.
func BuildCandidates(indexed []athletes.AthleteWithCount, known []roster.Entry) []Candidate {
	candidates := make([]Candidate, 0, len(indexed)+len(known))
	indexedIDs := make(map[uint]int, len(indexed)) // athlete id -> appearance count

	for i := range indexed {
		athlete := indexed[i]
		id := athlete.ID
		indexedIDs[id] = athlete.AppearanceCount

		candidates = append(candidates, Candidate{
			Name:            athlete.DisplayName,
			AthleteID:       &id,
			DisplayName:     athlete.DisplayName,
			Source:          SourceIndexed,
			AppearanceCount: athlete.AppearanceCount,
		})

		for _, alias := range athlete.Aliases {
			candidates = append(candidates, Candidate{
				Name:            alias,
				AthleteID:       &id,
				DisplayName:     athlete.DisplayName,
				Source:          SourceIndexed,
				AppearanceCount: athlete.AppearanceCount,
			})
		}
	}

	for _, entry := range known {
		if entry.DBAthleteID != nil {
			if _, covered := indexedIDs[*entry.DBAthleteID]; covered {
				continue
			}
			// Linked but the athlete row is gone (deleted after linking);
			// treat as roster-only so the name stays findable.
		}

		candidates = append(candidates, Candidate{
			Name:            entry.FullName,
			AthleteID:       entry.DBAthleteID,
			DisplayName:     entry.FullName,
			Source:          SourceRoster,
			AppearanceCount: 0,
		})
	}

	return candidates
}
