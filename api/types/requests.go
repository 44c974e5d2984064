package types

// ProcessVideoRequest submits one video to the processing pipeline
type ProcessVideoRequest struct {
	URL       string `json:"url" binding:"required"`
	Title     string `json:"title"`
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"` // YYYY-MM-DD
	Force     bool   `json:"force"`
}

// VerifyAppearanceRequest flags an appearance as human-reviewed.
// Verified defaults to true when the body omits it.
type VerifyAppearanceRequest struct {
	Verified *bool `json:"verified"`
}
