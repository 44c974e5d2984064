package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Typed fetch failures. ErrNoTranscript is an expected business outcome for
// videos without caption tracks, not an infrastructure error.
var (
	ErrNoTranscript      = errors.New("no transcript available")
	ErrVideoUnavailable  = errors.New("video unavailable")
	ErrTranscriptsDenied = errors.New("transcripts are disabled for this video")
)

// ClientConfig holds configuration for the transcript client
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Languages []string
	MaxSize   int64 // maximum response size in bytes
}

// Client fetches caption tracks from YouTube's watch page and timedtext
// endpoint. No API key is required.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	languages  []string
	maxSize    int64
}

// NewClient creates a new transcript client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.youtube.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "NinjaIndex/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"en"}
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = 10 * 1024 * 1024
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        5,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		languages: cfg.Languages,
		maxSize:   cfg.MaxSize,
	}
}

// captionTrack mirrors the track entries embedded in the watch page player
// response. Kind is "asr" for auto-generated tracks.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

var captionTracksRegex = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

// FetchTranscript fetches the transcript for a video, preferring a manually
// authored track over an auto-generated one in the configured languages.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (*Transcript, error) {
	page, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if strings.Contains(page, `"status":"ERROR"`) && strings.Contains(page, "Video unavailable") {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrVideoUnavailable)
	}

	match := captionTracksRegex.FindStringSubmatch(page)
	if match == nil {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNoTranscript)
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(match[1]), &tracks); err != nil {
		return nil, fmt.Errorf("parsing caption track list: %w", err)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNoTranscript)
	}

	track, autoGenerated := selectTrack(tracks, c.languages)
	if track == nil {
		return nil, fmt.Errorf("video %s: no transcript in languages %v: %w", videoID, c.languages, ErrNoTranscript)
	}

	segments, err := c.fetchTrack(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Transcript{
		VideoID:       videoID,
		Segments:      segments,
		Language:      track.LanguageCode,
		AutoGenerated: autoGenerated,
	}, nil
}

// selectTrack picks the best caption track: a manually authored track in a
// preferred language wins over an auto-generated one, which wins over any
// other track. Manual tracks are materially more accurate.
func selectTrack(tracks []captionTrack, languages []string) (*captionTrack, bool) {
	for _, lang := range languages {
		for i := range tracks {
			if matchesLanguage(tracks[i].LanguageCode, lang) && tracks[i].Kind != "asr" {
				return &tracks[i], false
			}
		}
	}
	for _, lang := range languages {
		for i := range tracks {
			if matchesLanguage(tracks[i].LanguageCode, lang) {
				return &tracks[i], tracks[i].Kind == "asr"
			}
		}
	}
	return nil, false
}

func matchesLanguage(code, lang string) bool {
	return code == lang || strings.HasPrefix(code, lang+"-")
}

func (c *Client) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	watchURL := fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID)

	req, err := http.NewRequestWithContext(ctx, "GET", watchURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("video %s: %w", videoID, ErrVideoUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxSize))
	if err != nil {
		return "", fmt.Errorf("reading watch page: %w", err)
	}

	return string(body), nil
}

// timedTextResponse is the XML document served by the timedtext endpoint
type timedTextResponse struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start    float64 `xml:"start,attr"`
		Duration float64 `xml:"dur,attr"`
		Body     string  `xml:",chardata"`
	} `xml:"text"`
}

func (c *Client) fetchTrack(ctx context.Context, trackURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", trackURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching caption track: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption track returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxSize))
	if err != nil {
		return nil, fmt.Errorf("reading caption track: %w", err)
	}

	var doc timedTextResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing caption track XML: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, text := range doc.Texts {
		cleaned := strings.TrimSpace(html.UnescapeString(text.Body))
		if cleaned == "" {
			continue
		}
		// Collapse the newlines YouTube inserts mid-caption
		cleaned = strings.Join(strings.Fields(cleaned), " ")
		segments = append(segments, Segment{
			Text:     cleaned,
			Start:    text.Start,
			Duration: text.Duration,
		})
	}

	return segments, nil
}
