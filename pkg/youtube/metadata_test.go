package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oembed":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Sinai Sports - 12/21/25 - Tier 2 - Qualifier","author_name":"Sinai Sports","thumbnail_url":"https://i.ytimg.com/vi/abc/hq.jpg"}`))
		case "/watch":
			_, _ = w.Write([]byte(`<html>"uploadDate": "2025-12-22T08:00:00-08:00"</html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewMetadataClient(MetadataClientConfig{BaseURL: server.URL})
	meta := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")

	assert.Equal(t, "dQw4w9WgXcQ", meta.VideoID)
	assert.Equal(t, "Sinai Sports - 12/21/25 - Tier 2 - Qualifier", meta.Title)
	assert.Equal(t, "Sinai Sports", meta.ChannelName)
	assert.Equal(t, "https://i.ytimg.com/vi/abc/hq.jpg", meta.ThumbnailURL)
	require.NotNil(t, meta.UploadDate)
	assert.Equal(t, "2025-12-22", meta.UploadDate.Format("2006-01-02"))
}

func TestFetchMetadataNeverFailsHard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewMetadataClient(MetadataClientConfig{BaseURL: server.URL})
	meta := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")

	require.NotNil(t, meta)
	assert.Equal(t, "dQw4w9WgXcQ", meta.VideoID)
	assert.Empty(t, meta.Title)
	assert.Nil(t, meta.UploadDate)
}

func TestEventNameFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Sinai Sports - 12/21/25 - Tier 2 - Qualifier", "Sinai Sports"},
		{"ANW Season 15 Finals", ""},
		{"", ""},
		{"  Apex NinjaPlex - Finals", "Apex NinjaPlex"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EventNameFromTitle(tt.title), tt.title)
	}
}
