package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolUseResponse(t *testing.T, input string) string {
	t.Helper()
	resp := map[string]any{
		"id":   "msg_test",
		"role": "assistant",
		"content": []map[string]any{
			{
				"type":  "tool_use",
				"name":  extractToolName,
				"input": json.RawMessage(input),
			},
		},
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req messagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tool", req.ToolChoice.Type)
		assert.Equal(t, extractToolName, req.ToolChoice.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(toolUseResponse(t, `{"appearances":[
			{"name":"Jessie Graff","timestamp_seconds":125,"confidence":0.95},
			{"name":"Joe Moravsky","timestamp_seconds":310,"confidence":0.8}
		]}`)))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	result, err := client.Extract(context.Background(), "[02:05] here comes Jessie Graff", "abc123def45")
	require.NoError(t, err)

	assert.Equal(t, "abc123def45", result.VideoID)
	assert.Zero(t, result.Skipped)
	require.Len(t, result.Appearances, 2)
	assert.Equal(t, "Jessie Graff", result.Appearances[0].Name)
	assert.Equal(t, 125, result.Appearances[0].TimestampSeconds)
	assert.InDelta(t, 0.95, result.Appearances[0].Confidence, 0.001)
}

func TestExtractSkipsMalformedCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(toolUseResponse(t, `{"appearances":[
			{"name":"Jessie Graff","timestamp_seconds":125,"confidence":0.95},
			{"name":"","timestamp_seconds":10,"confidence":0.9},
			{"name":"No Timestamp","confidence":0.9},
			{"name":"Bad Confidence","timestamp_seconds":20,"confidence":1.5},
			{"name":"Negative","timestamp_seconds":-5,"confidence":0.5}
		]}`)))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	result, err := client.Extract(context.Background(), "transcript", "abc123def45")
	require.NoError(t, err)

	// One valid entry survives, four malformed ones are skipped individually
	require.Len(t, result.Appearances, 1)
	assert.Equal(t, "Jessie Graff", result.Appearances[0].Name)
	assert.Equal(t, 4, result.Skipped)
}

func TestExtractRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Extract(context.Background(), "transcript", "abc123def45")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)

	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "rate_limit_error", apiErr.Type)
}

func TestExtractNoToolUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_test","role":"assistant","content":[{"type":"text","text":"I cannot do that"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Extract(context.Background(), "transcript", "abc123def45")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractMissingAPIKey(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.Extract(context.Background(), "transcript", "abc123def45")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestExtractEmptyAppearances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(toolUseResponse(t, `{"appearances":[]}`)))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	result, err := client.Extract(context.Background(), "transcript", "abc123def45")
	require.NoError(t, err)

	// Zero mentions is a normal outcome, not an error
	assert.Empty(t, result.Appearances)
	assert.Zero(t, result.Skipped)
}
