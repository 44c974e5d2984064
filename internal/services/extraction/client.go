package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	anthropicVersion = "2023-06-01"
	extractToolName  = "record_athlete_appearances"
)

// Config holds configuration for the extraction client
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client extracts athlete appearances from transcripts via the Anthropic
// messages API with a forced tool call for structured output.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	userAgent  string
}

// NewClient creates a new extraction client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "NinjaIndex/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		userAgent:  cfg.UserAgent,
	}
}

// Extract runs structured extraction over transcript text annotated with
// [MM:SS] time markers. A malformed candidate entry is skipped individually;
// only a rejected or unusable response fails the whole call.
func (c *Client) Extract(ctx context.Context, transcriptText, videoID string) (*Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemPrompt,
		Tools: []toolDef{{
			Name:        extractToolName,
			Description: "Record all athlete appearances found in the transcript",
			InputSchema: json.RawMessage(extractToolSchema),
		}},
		ToolChoice: toolChoice{Type: "tool", Name: extractToolName},
		Messages: []apiMessage{{
			Role:    "user",
			Content: fmt.Sprintf(userPromptTemplate, transcriptText),
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var decoded messagesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := APIError{StatusCode: resp.StatusCode}
		if decoded.Error != nil {
			apiErr.Type = decoded.Error.Type
			apiErr.Message = decoded.Error.Message
		}
		return nil, apiErr
	}

	var input *toolInput
	for _, block := range decoded.Content {
		if block.Type == "tool_use" && block.Name == extractToolName {
			var parsed toolInput
			if err := json.Unmarshal(block.Input, &parsed); err != nil {
				return nil, fmt.Errorf("%w: unparseable tool input: %v", ErrExtractionFailed, err)
			}
			input = &parsed
			break
		}
	}
	if input == nil {
		return nil, fmt.Errorf("%w: no tool use in response", ErrExtractionFailed)
	}

	result := &Result{VideoID: videoID}
	for _, entry := range input.Appearances {
		appearance, err := decodeAppearance(entry)
		if err != nil {
			log.Printf("[WARN] skipping malformed candidate for video %s: %v", videoID, err)
			result.Skipped++
			continue
		}
		result.Appearances = append(result.Appearances, appearance)
	}

	return result, nil
}

// decodeAppearance validates one candidate entry. Anything that fails here is
// a per-item skip, never a whole-batch failure.
func decodeAppearance(entry json.RawMessage) (Appearance, error) {
	var raw rawAppearance
	if err := json.Unmarshal(entry, &raw); err != nil {
		return Appearance{}, fmt.Errorf("decoding entry: %w", err)
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Appearance{}, fmt.Errorf("missing name")
	}
	if raw.TimestampSeconds == nil {
		return Appearance{}, fmt.Errorf("missing timestamp for %q", name)
	}
	ts, err := raw.TimestampSeconds.Int64()
	if err != nil {
		return Appearance{}, fmt.Errorf("non-integer timestamp for %q: %w", name, err)
	}
	if ts < 0 {
		return Appearance{}, fmt.Errorf("negative timestamp %d for %q", ts, name)
	}
	if raw.Confidence == nil {
		return Appearance{}, fmt.Errorf("missing confidence for %q", name)
	}
	confidence, err := raw.Confidence.Float64()
	if err != nil {
		return Appearance{}, fmt.Errorf("non-numeric confidence for %q: %w", name, err)
	}
	if confidence < 0.0 || confidence > 1.0 {
		return Appearance{}, fmt.Errorf("confidence %v out of range for %q", confidence, name)
	}

	return Appearance{
		Name:             name,
		TimestampSeconds: int(ts),
		Confidence:       confidence,
	}, nil
}
