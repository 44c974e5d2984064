package videos

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/warpedwall/ninja-index/api/types"
	"github.com/warpedwall/ninja-index/internal/models"
	videosService "github.com/warpedwall/ninja-index/internal/services/videos"
)

func TestGetByID(t *testing.T) {
	service := new(MockVideoService)
	service.On("GetVideoByID", mock.Anything, uint(3)).Return(&models.Video{
		Model:       gorm.Model{ID: 3},
		YouTubeID:   "abc123def45",
		Title:       "National Finals",
		EventName:   "National Finals",
		ProcessedAt: time.Now().UTC(),
		Appearances: []models.AthleteAppearance{
			{
				Model:            gorm.Model{ID: 1},
				AthleteID:        7,
				VideoID:          3,
				TimestampSeconds: 65,
				Confidence:       0.9,
				Athlete:          models.Athlete{DisplayName: "Daniel Gil"},
			},
			{
				Model:            gorm.Model{ID: 2},
				AthleteID:        8,
				VideoID:          3,
				TimestampSeconds: 210,
				Confidence:       0.8,
				Athlete:          models.Athlete{DisplayName: "Vance Walker"},
			},
		},
	}, nil)

	w := performRequest(t, &types.Dependencies{VideoService: service}, http.MethodGet, "/api/v1/videos/3")
	assert.Equal(t, http.StatusOK, w.Code)

	var response types.SingleVideoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Video)
	assert.Equal(t, "National Finals", response.Video.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123def45", response.Video.URL)
	assert.Equal(t, 2, response.Video.AthleteCount)
	require.Len(t, response.Appearances, 2)
	assert.Equal(t, "Daniel Gil", response.Appearances[0].AthleteName)
	assert.Equal(t, "National Finals", response.Appearances[0].VideoTitle)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123def45&t=65s", response.Appearances[0].TimestampURL)
}

func TestGetByIDNotFound(t *testing.T) {
	service := new(MockVideoService)
	service.On("GetVideoByID", mock.Anything, uint(99)).
		Return(nil, videosService.NewNotFoundError(uint(99)))

	w := performRequest(t, &types.Dependencies{VideoService: service}, http.MethodGet, "/api/v1/videos/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByIDInvalidID(t *testing.T) {
	service := new(MockVideoService)

	w := performRequest(t, &types.Dependencies{VideoService: service}, http.MethodGet, "/api/v1/videos/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "GetVideoByID", mock.Anything, mock.Anything)
}

func TestGetByIDServiceError(t *testing.T) {
	service := new(MockVideoService)
	service.On("GetVideoByID", mock.Anything, uint(3)).Return(nil, assert.AnError)

	w := performRequest(t, &types.Dependencies{VideoService: service}, http.MethodGet, "/api/v1/videos/3")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
