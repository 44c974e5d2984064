package types

import (
	"fmt"

	"github.com/warpedwall/ninja-index/internal/models"
	"github.com/warpedwall/ninja-index/internal/services/athletes"
	"github.com/warpedwall/ninja-index/internal/services/search"
	"github.com/warpedwall/ninja-index/internal/services/videos"
)

// AthleteFromModel converts a stored athlete into its API shape
func AthleteFromModel(athlete *models.Athlete) *Athlete {
	return &Athlete{
		ID:              athlete.ID,
		DisplayName:     athlete.DisplayName,
		Aliases:         []string(athlete.Aliases),
		FromRoster:      athlete.FromRoster,
		AppearanceCount: len(athlete.Appearances),
	}
}

// AthleteFromCount converts an aggregate athlete row into its API shape
func AthleteFromCount(row athletes.AthleteWithCount) Athlete {
	return Athlete{
		ID:              row.ID,
		DisplayName:     row.DisplayName,
		Aliases:         []string(row.Aliases),
		FromRoster:      row.FromRoster,
		AppearanceCount: row.AppearanceCount,
	}
}

// AppearanceFromModel converts a stored appearance into its API shape.
// Athlete and video names are filled only when the association is loaded.
func AppearanceFromModel(appearance *models.AthleteAppearance) Appearance {
	out := Appearance{
		ID:               appearance.ID,
		AthleteID:        appearance.AthleteID,
		AthleteName:      appearance.Athlete.DisplayName,
		VideoID:          appearance.VideoID,
		VideoTitle:       appearance.Video.Title,
		TimestampSeconds: appearance.TimestampSeconds,
		Confidence:       appearance.Confidence,
		RawName:          appearance.RawName,
		Verified:         appearance.Verified,
	}
	if appearance.Video.YouTubeID != "" {
		out.TimestampURL = appearance.TimestampURL()
	}
	return out
}

// AppearancesFromModels converts a slice of stored appearances
func AppearancesFromModels(rows []models.AthleteAppearance) []Appearance {
	out := make([]Appearance, 0, len(rows))
	for i := range rows {
		out = append(out, AppearanceFromModel(&rows[i]))
	}
	return out
}

// AppearancesForVideo converts a video's appearances, filling the video
// title and timestamp URL from the parent row
func AppearancesForVideo(video *models.Video) []Appearance {
	out := make([]Appearance, 0, len(video.Appearances))
	for i := range video.Appearances {
		a := AppearanceFromModel(&video.Appearances[i])
		a.VideoTitle = video.Title
		a.TimestampURL = fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", video.YouTubeID, a.TimestampSeconds)
		out = append(out, a)
	}
	return out
}

// VideoFromModel converts a stored video into its API shape
func VideoFromModel(video *models.Video) *Video {
	return &Video{
		ID:           video.ID,
		YouTubeID:    video.YouTubeID,
		URL:          video.WatchURL(),
		Title:        video.Title,
		EventName:    video.EventName,
		EventDate:    video.EventDate,
		ChannelName:  video.ChannelName,
		ProcessedAt:  video.ProcessedAt,
		AthleteCount: distinctAthletes(video.Appearances),
	}
}

// VideoFromCount converts an aggregate video row into its API shape
func VideoFromCount(row videos.VideoWithCount) Video {
	return Video{
		ID:           row.ID,
		YouTubeID:    row.YouTubeID,
		URL:          "https://www.youtube.com/watch?v=" + row.YouTubeID,
		Title:        row.Title,
		EventName:    row.EventName,
		EventDate:    row.EventDate,
		ChannelName:  row.ChannelName,
		ProcessedAt:  row.ProcessedAt,
		AthleteCount: row.AthleteCount,
	}
}

// MatchesFromSearch converts ranked fuzzy matches into their API shape
func MatchesFromSearch(matches []search.Match) []SearchMatch {
	out := make([]SearchMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, SearchMatch{
			AthleteID:       m.AthleteID,
			DisplayName:     m.DisplayName,
			SimilarityScore: m.Score,
			MatchedOn:       m.MatchedOn,
			Source:          m.Source,
			AppearanceCount: m.AppearanceCount,
		})
	}
	return out
}

func distinctAthletes(rows []models.AthleteAppearance) int {
	seen := make(map[uint]struct{}, len(rows))
	for _, row := range rows {
		seen[row.AthleteID] = struct{}{}
	}
	return len(seen)
}
