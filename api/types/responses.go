package types

// Status constants for API responses
const (
	StatusOK     = "ok"
	StatusError  = "error"
	StatusFailed = "failed"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// AthleteSearchResponse for the name suggestion endpoint
type AthleteSearchResponse struct {
	BaseResponse
	Query   string        `json:"query"`
	Matches []SearchMatch `json:"matches"`
	Count   int           `json:"count"`
}

// SingleAthleteResponse for getting a single athlete with appearances
type SingleAthleteResponse struct {
	BaseResponse
	Athlete     *Athlete     `json:"athlete"`
	Appearances []Appearance `json:"appearances"`
}

// VideosResponse for video lists
type VideosResponse struct {
	BaseResponse
	Videos []Video `json:"videos"`
	Count  int     `json:"count"`
}

// SingleVideoResponse for getting a single video with appearances
type SingleVideoResponse struct {
	BaseResponse
	Video       *Video       `json:"video"`
	Appearances []Appearance `json:"appearances"`
}

// ProcessVideoResponse for the processing endpoint
type ProcessVideoResponse struct {
	BaseResponse
	VideoID            uint   `json:"video_id,omitempty"`
	YouTubeID          string `json:"youtube_id"`
	Title              string `json:"title,omitempty"`
	ProcessingStatus   string `json:"processing_status"`
	Reason             string `json:"reason,omitempty"`
	AthletesFound      int    `json:"athletes_found"`
	AppearancesCreated int    `json:"appearances_created"`
	AppearancesSkipped int    `json:"appearances_skipped"`
	CandidatesSkipped  int    `json:"candidates_skipped"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
