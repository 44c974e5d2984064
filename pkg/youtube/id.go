package youtube

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidVideoID is returned when no video identifier can be extracted
var ErrInvalidVideoID = errors.New("invalid video ID")

// videoIDPatterns covers every URL shape we accept. All shapes for the same
// video must normalize to the same 11-character identifier so a video is
// never stored twice.
var videoIDPatterns = []*regexp.Regexp{
	// Standard watch URL: youtube.com/watch?v=VIDEO_ID
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
	// Short URL: youtu.be/VIDEO_ID
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	// Embed URL: youtube.com/embed/VIDEO_ID
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	// Shorts URL: youtube.com/shorts/VIDEO_ID
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	// Just the video ID
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID extracts the canonical video identifier from a URL or
// returns the input if it is already a bare ID.
func ExtractVideoID(urlOrID string) (string, error) {
	urlOrID = strings.TrimSpace(urlOrID)

	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(urlOrID); match != nil {
			return match[1], nil
		}
	}

	return "", fmt.Errorf("could not extract video ID from %q: %w", urlOrID, ErrInvalidVideoID)
}
