package extraction

import "encoding/json"

// Appearance is a single validated athlete mention extracted from a transcript
type Appearance struct {
	Name             string  `json:"name"`
	TimestampSeconds int     `json:"timestamp_seconds"`
	Confidence       float64 `json:"confidence"`
}

// Result holds the extraction output for one video
type Result struct {
	VideoID     string
	Appearances []Appearance
	Skipped     int // malformed candidate entries dropped during decoding
}

// AthleteCount returns the number of unique athlete names in the result
func (r *Result) AthleteCount() int {
	seen := make(map[string]struct{}, len(r.Appearances))
	for _, a := range r.Appearances {
		seen[a.Name] = struct{}{}
	}
	return len(seen)
}

// --- Anthropic messages API wire types ---

type messagesRequest struct {
	Model      string       `json:"model"`
	MaxTokens  int          `json:"max_tokens"`
	System     string       `json:"system"`
	Tools      []toolDef    `json:"tools"`
	ToolChoice toolChoice   `json:"tool_choice"`
	Messages   []apiMessage `json:"messages"`
}

type toolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

type toolChoice struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error"`
}

type contentBlock struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// rawAppearance keeps numeric fields loose so a single malformed entry can be
// rejected on its own instead of failing the whole decode.
type rawAppearance struct {
	Name             string       `json:"name"`
	TimestampSeconds *json.Number `json:"timestamp_seconds"`
	Confidence       *json.Number `json:"confidence"`
}

type toolInput struct {
	Appearances []json.RawMessage `json:"appearances"`
}
