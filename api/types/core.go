package types

import "time"

// Core data types used across API responses

// Athlete represents an indexed athlete with aggregate counts
type Athlete struct {
	ID              uint     `json:"id"`
	DisplayName     string   `json:"display_name"`
	Aliases         []string `json:"aliases,omitempty"`
	FromRoster      bool     `json:"from_roster"`
	AppearanceCount int      `json:"appearance_count"`
}

// Appearance represents one timestamped mention of an athlete in a video
type Appearance struct {
	ID               uint    `json:"id"`
	AthleteID        uint    `json:"athlete_id"`
	AthleteName      string  `json:"athlete_name,omitempty"`
	VideoID          uint    `json:"video_id"`
	VideoTitle       string  `json:"video_title,omitempty"`
	TimestampSeconds int     `json:"timestamp_seconds"`
	TimestampURL     string  `json:"timestamp_url"`
	Confidence       float64 `json:"confidence"`
	RawName          string  `json:"raw_name,omitempty"`
	Verified         bool    `json:"verified"`
}

// Video represents an indexed video with essential fields
type Video struct {
	ID           uint       `json:"id"`
	YouTubeID    string     `json:"youtube_id"`
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	EventName    string     `json:"event_name,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	ChannelName  string     `json:"channel_name,omitempty"`
	ProcessedAt  time.Time  `json:"processed_at"`
	AthleteCount int        `json:"athlete_count"`
}

// SearchMatch represents one ranked name suggestion
type SearchMatch struct {
	AthleteID       *uint   `json:"id,omitempty"`
	DisplayName     string  `json:"display_name"`
	SimilarityScore float64 `json:"similarity_score"`
	MatchedOn       string  `json:"matched_on"`
	Source          string  `json:"source"`
	AppearanceCount int     `json:"appearance_count"`
}
