package processing

// Status classifies the outcome of a pipeline run
type Status string

const (
	// StatusCreated means the video was indexed for the first time
	StatusCreated Status = "created"
	// StatusUpdated means an already-indexed video was reprocessed
	StatusUpdated Status = "updated"
	// StatusAlreadyProcessed means the video was skipped as indexed
	StatusAlreadyProcessed Status = "already_processed"
	// StatusFailed means the run ended without an indexed video
	StatusFailed Status = "failed"
)

// Reason explains a failed run
type Reason string

const (
	// ReasonNoTranscript means the video has no usable captions
	ReasonNoTranscript Reason = "no_transcript"
	// ReasonExtractionFailed means the transcript could not be analyzed
	ReasonExtractionFailed Reason = "extraction_failed"
	// ReasonPersistenceFailed means extracted appearances could not be saved
	ReasonPersistenceFailed Reason = "persistence_failed"
)

// Result summarizes one pipeline run. Business failures land here with
// StatusFailed and a Reason; only infrastructure problems surface as errors.
type Result struct {
	VideoID            uint   `json:"video_id,omitempty"`
	YouTubeID          string `json:"youtube_id"`
	Title              string `json:"title,omitempty"`
	Status             Status `json:"status"`
	Reason             Reason `json:"reason,omitempty"`
	Message            string `json:"message,omitempty"`
	AthletesFound      int    `json:"athletes_found"`
	AppearancesCreated int    `json:"appearances_created"`
	// AppearancesSkipped counts duplicate (video, athlete, timestamp)
	// triples; CandidatesSkipped counts malformed extractor entries.
	AppearancesSkipped int `json:"appearances_skipped"`
	CandidatesSkipped  int `json:"candidates_skipped"`
}

// Failed reports whether the run ended without indexing the video
func (r *Result) Failed() bool {
	return r.Status == StatusFailed
}
