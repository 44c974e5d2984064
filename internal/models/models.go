package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Athlete represents a canonical competitor identity. Aliases hold alternate
// spellings and nicknames that resolve to this identity.
type Athlete struct {
	gorm.Model
	DisplayName string                      `json:"display_name" gorm:"size:255;not null;uniqueIndex"`
	Aliases     datatypes.JSONSlice[string] `json:"aliases"`
	FromRoster  bool                        `json:"from_roster" gorm:"default:false"`
	Appearances []AthleteAppearance         `json:"appearances,omitempty" gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE"`
}

// HasAlias reports whether the athlete already carries the alias,
// compared case-insensitively.
func (a *Athlete) HasAlias(alias string) bool {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for _, existing := range a.Aliases {
		if strings.ToLower(existing) == needle {
			return true
		}
	}
	return false
}

// Video represents a processed YouTube video
type Video struct {
	gorm.Model
	YouTubeID     string              `json:"youtube_id" gorm:"size:11;uniqueIndex;not null"`
	Title         string              `json:"title" gorm:"size:500"`
	EventName     string              `json:"event_name" gorm:"size:255"`
	EventDate     *time.Time          `json:"event_date"`
	ChannelName   string              `json:"channel_name" gorm:"size:255"`
	TranscriptRaw string              `json:"-" gorm:"type:text"`
	ProcessedAt   time.Time           `json:"processed_at"`
	Appearances   []AthleteAppearance `json:"appearances,omitempty" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

// WatchURL returns the plain YouTube watch URL for the video
func (v *Video) WatchURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.YouTubeID)
}

// AthleteAppearance links an athlete to a video at a specific timestamp.
// The composite unique index bounds duplication on reprocessing: one row
// per (video, athlete, timestamp).
type AthleteAppearance struct {
	gorm.Model
	AthleteID        uint    `json:"athlete_id" gorm:"not null;index;uniqueIndex:idx_video_athlete_ts"`
	VideoID          uint    `json:"video_id" gorm:"not null;index;uniqueIndex:idx_video_athlete_ts"`
	TimestampSeconds int     `json:"timestamp_seconds" gorm:"not null;uniqueIndex:idx_video_athlete_ts"`
	Confidence       float64 `json:"confidence" gorm:"default:1.0"`
	RawName          string  `json:"raw_name" gorm:"size:255"` // name exactly as it appeared in the transcript
	Verified         bool    `json:"verified" gorm:"default:false"`
	Athlete          Athlete `json:"-" gorm:"foreignKey:AthleteID"`
	Video            Video   `json:"-" gorm:"foreignKey:VideoID"`
}

// TimestampURL returns a YouTube watch URL that jumps straight to the
// appearance. Requires the Video association to be loaded.
func (a *AthleteAppearance) TimestampURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", a.Video.YouTubeID, a.TimestampSeconds)
}

// All returns every model that needs migration, in dependency order
func All() []any {
	return []any{&Athlete{}, &Video{}, &AthleteAppearance{}}
}
