package search

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Match is one ranked search suggestion
type Match struct {
	AthleteID       *uint   `json:"id"`
	DisplayName     string  `json:"display_name"`
	Score           float64 `json:"similarity_score"`
	MatchedOn       string  `json:"matched_on"` // the exact name or alias that matched
	Source          string  `json:"source"`
	AppearanceCount int     `json:"appearance_count"`
}

// scored pairs a match with the direct ratio used as a specificity tiebreaker
type scoredMatch struct {
	match  Match
	direct int
}

// scoreCandidate returns the similarity of query to one candidate name in
// [0,100], plus the direct ratio. Exact equality short-circuits to 100
// before any fuzzy work; substrings score by matched-to-total length ratio;
// everything else falls through to edit-distance and token measures.
func scoreCandidate(queryLower, nameLower string) (score int, direct int) {
	if queryLower == nameLower {
		return 100, 100
	}

	direct = fuzzy.Ratio(queryLower, nameLower)
	score = direct

	if strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower) {
		shorter, longer := len(queryLower), len(nameLower)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		if substring := 100 * shorter / longer; substring > score {
			score = substring
		}
	}

	if partial := fuzzy.PartialRatio(queryLower, nameLower); partial > score {
		score = partial
	}
	if tokenSet := fuzzy.TokenSetRatio(queryLower, nameLower); tokenSet > score {
		score = tokenSet
	}

	return score, direct
}

// Rank scores every candidate against the query and returns deduplicated
// matches ordered by score descending, appearance count descending, then
// display name ascending, truncated to limit.
func Rank(query string, candidates []Candidate, limit, threshold int) []Match {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return nil
	}

	var scored []scoredMatch
	for _, candidate := range candidates {
		nameLower := strings.ToLower(candidate.Name)
		score, direct := scoreCandidate(queryLower, nameLower)
		if score < threshold {
			continue
		}
		scored = append(scored, scoredMatch{
			match: Match{
				AthleteID:       candidate.AthleteID,
				DisplayName:     candidate.DisplayName,
				Score:           float64(score),
				MatchedOn:       candidate.Name,
				Source:          candidate.Source,
				AppearanceCount: candidate.AppearanceCount,
			},
			direct: direct,
		})
	}

	results := dedupe(scored)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].AppearanceCount != results[j].AppearanceCount {
			return results[i].AppearanceCount > results[j].AppearanceCount
		}
		return results[i].DisplayName < results[j].DisplayName
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// dedupe keeps the best-scoring match per athlete. On a score tie the higher
// direct ratio wins, preferring the more specific name match. Unlinked
// roster entries have no id to collapse on and pass through untouched.
func dedupe(scored []scoredMatch) []Match {
	bestByID := make(map[uint]scoredMatch)
	var order []uint
	var unlinked []Match

	for _, sm := range scored {
		if sm.match.AthleteID == nil {
			unlinked = append(unlinked, sm.match)
			continue
		}

		id := *sm.match.AthleteID
		existing, ok := bestByID[id]
		if !ok {
			bestByID[id] = sm
			order = append(order, id)
			continue
		}
		if sm.match.Score > existing.match.Score ||
			(sm.match.Score == existing.match.Score && sm.direct > existing.direct) {
			bestByID[id] = sm
		}
	}

	results := make([]Match, 0, len(order)+len(unlinked))
	for _, id := range order {
		results = append(results, bestByID[id].match)
	}
	results = append(results, unlinked...)
	return results
}
