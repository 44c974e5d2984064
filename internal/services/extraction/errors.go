package extraction

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrExtractionFailed = errors.New("extraction failed")
	ErrRateLimited      = errors.New("extraction API rate limited")
	ErrMissingAPIKey    = errors.New("anthropic API key not configured")
)

// APIError represents an error returned by the extraction API
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e APIError) Error() string {
	return fmt.Sprintf("extraction API error (status %d, %s): %s", e.StatusCode, e.Type, e.Message)
}

func (e APIError) Is(target error) bool {
	if target == ErrRateLimited {
		return e.StatusCode == 429
	}
	return target == ErrExtractionFailed
}
