package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Metadata holds video metadata fetched without an API key
type Metadata struct {
	VideoID      string
	Title        string
	ChannelName  string
	ThumbnailURL string
	UploadDate   *time.Time
}

var uploadDateRegex = regexp.MustCompile(`"uploadDate"\s*:\s*"(\d{4}-\d{2}-\d{2})`)

// MetadataClientConfig holds configuration for the metadata client
type MetadataClientConfig struct {
	BaseURL   string // watch page + oEmbed host
	UserAgent string
	Timeout   time.Duration
}

// MetadataClient fetches video metadata via the oEmbed endpoint and a
// watch-page scrape for the upload date.
type MetadataClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewMetadataClient creates a new metadata client
func NewMetadataClient(cfg MetadataClientConfig) *MetadataClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.youtube.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "NinjaIndex/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &MetadataClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// FetchMetadata fetches whatever metadata is reachable for a video. It never
// fails hard: partial data (or just the video ID) is returned when either
// request misbehaves.
func (c *MetadataClient) FetchMetadata(ctx context.Context, videoID string) *Metadata {
	meta := &Metadata{VideoID: videoID}

	if err := c.fetchOEmbed(ctx, videoID, meta); err != nil {
		log.Printf("[WARN] oEmbed lookup failed for %s: %v", videoID, err)
	}
	if err := c.fetchUploadDate(ctx, videoID, meta); err != nil {
		log.Printf("[WARN] upload date lookup failed for %s: %v", videoID, err)
	}

	return meta
}

func (c *MetadataClient) fetchOEmbed(ctx context.Context, videoID string, meta *Metadata) error {
	params := url.Values{}
	params.Set("url", fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID))
	params.Set("format", "json")
	endpoint := fmt.Sprintf("%s/oembed?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("oEmbed returned status %d", resp.StatusCode)
	}

	var payload struct {
		Title        string `json:"title"`
		AuthorName   string `json:"author_name"`
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decoding oEmbed response: %w", err)
	}

	meta.Title = payload.Title
	meta.ChannelName = payload.AuthorName
	meta.ThumbnailURL = payload.ThumbnailURL
	return nil
}

func (c *MetadataClient) fetchUploadDate(ctx context.Context, videoID string, meta *Metadata) error {
	watchURL := fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID)

	req, err := http.NewRequestWithContext(ctx, "GET", watchURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return fmt.Errorf("reading watch page: %w", err)
	}

	match := uploadDateRegex.FindStringSubmatch(string(body))
	if match == nil {
		return nil // page layout changed or no structured data; not fatal
	}

	parsed, err := time.Parse("2006-01-02", match[1])
	if err != nil {
		return fmt.Errorf("parsing upload date %q: %w", match[1], err)
	}
	meta.UploadDate = &parsed
	return nil
}

// EventNameFromTitle extracts the venue/event name from titles shaped like
// "Sinai Sports - 12/21/25 - Tier 2 - Qualifier".
func EventNameFromTitle(title string) string {
	if title == "" {
		return ""
	}
	parts := strings.Split(title, " - ")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0])
	}
	return ""
}
