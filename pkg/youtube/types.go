package youtube

import (
	"fmt"
	"strings"
)

// Segment is a single timed piece of transcript text
type Segment struct {
	Text     string
	Start    float64 // seconds from video start
	Duration float64 // seconds
}

// End returns the end time of the segment in seconds
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// Transcript is an ordered sequence of timed segments for one video
type Transcript struct {
	VideoID       string
	Segments      []Segment
	Language      string
	AutoGenerated bool
}

// FullText returns the transcript text without any timing markers
func (t *Transcript) FullText() string {
	parts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, " ")
}

// TextWithTimestamps renders the transcript with inline [MM:SS] markers so a
// text-based extractor can recover timing without a separate alignment step.
func (t *Transcript) TextWithTimestamps() string {
	var b strings.Builder
	for i, seg := range t.Segments {
		if i > 0 {
			b.WriteString("\n")
		}
		minutes := int(seg.Start) / 60
		seconds := int(seg.Start) % 60
		fmt.Fprintf(&b, "[%02d:%02d] %s", minutes, seconds, seg.Text)
	}
	return b.String()
}

// DurationSeconds returns the total duration covered by the transcript
func (t *Transcript) DurationSeconds() float64 {
	if len(t.Segments) == 0 {
		return 0
	}
	last := t.Segments[len(t.Segments)-1]
	return last.Start + last.Duration
}
