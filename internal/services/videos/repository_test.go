package videos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warpedwall/ninja-index/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(models.All()...)
	require.NoError(t, err)

	return db
}

func TestRepository_CreateVideo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	video := &models.Video{
		YouTubeID:   "abc123def45",
		Title:       "ANW Season 15 Finals",
		ProcessedAt: time.Now().UTC(),
	}

	err := repo.CreateVideo(context.Background(), video)
	require.NoError(t, err)
	assert.NotZero(t, video.ID)
}

func TestRepository_CreateVideoDuplicateYouTubeID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.CreateVideo(context.Background(), &models.Video{YouTubeID: "abc123def45"}))

	err := repo.CreateVideo(context.Background(), &models.Video{YouTubeID: "abc123def45"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRepository_GetVideoByYouTubeID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.CreateVideo(context.Background(), &models.Video{
		YouTubeID: "abc123def45",
		Title:     "Qualifier",
	}))

	video, err := repo.GetVideoByYouTubeID(context.Background(), "abc123def45")
	require.NoError(t, err)
	assert.Equal(t, "Qualifier", video.Title)

	_, err = repo.GetVideoByYouTubeID(context.Background(), "zzzzzzzzzzz")
	assert.True(t, IsNotFound(err))
}

func TestRepository_GetVideoByIDPreloadsAppearances(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	video := &models.Video{YouTubeID: "abc123def45"}
	require.NoError(t, repo.CreateVideo(context.Background(), video))

	athlete := &models.Athlete{DisplayName: "Jessie Graff"}
	require.NoError(t, db.Create(athlete).Error)

	for _, ts := range []int{250, 40} {
		require.NoError(t, db.Create(&models.AthleteAppearance{
			AthleteID:        athlete.ID,
			VideoID:          video.ID,
			TimestampSeconds: ts,
		}).Error)
	}

	retrieved, err := repo.GetVideoByID(context.Background(), video.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Appearances, 2)
	assert.Equal(t, 40, retrieved.Appearances[0].TimestampSeconds)
	assert.Equal(t, "Jessie Graff", retrieved.Appearances[0].Athlete.DisplayName)
}

func TestRepository_ListVideosWithCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	older := &models.Video{YouTubeID: "aaaaaaaaaaa", ProcessedAt: time.Now().UTC().Add(-time.Hour)}
	newer := &models.Video{YouTubeID: "bbbbbbbbbbb", ProcessedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateVideo(context.Background(), older))
	require.NoError(t, repo.CreateVideo(context.Background(), newer))

	graff := &models.Athlete{DisplayName: "Jessie Graff"}
	gil := &models.Athlete{DisplayName: "Daniel Gil"}
	require.NoError(t, db.Create(graff).Error)
	require.NoError(t, db.Create(gil).Error)

	// Two athletes on the older video, one of them twice
	for _, row := range []models.AthleteAppearance{
		{AthleteID: graff.ID, VideoID: older.ID, TimestampSeconds: 10},
		{AthleteID: graff.ID, VideoID: older.ID, TimestampSeconds: 90},
		{AthleteID: gil.ID, VideoID: older.ID, TimestampSeconds: 45},
	} {
		require.NoError(t, db.Create(&row).Error)
	}

	rows, err := repo.ListVideosWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first, athlete counts are distinct athletes not rows
	assert.Equal(t, "bbbbbbbbbbb", rows[0].YouTubeID)
	assert.Equal(t, 0, rows[0].AthleteCount)
	assert.Equal(t, "aaaaaaaaaaa", rows[1].YouTubeID)
	assert.Equal(t, 2, rows[1].AthleteCount)
}

func TestRepository_UpdateVideo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	video := &models.Video{YouTubeID: "abc123def45", Title: "Original"}
	require.NoError(t, repo.CreateVideo(context.Background(), video))

	video.Title = "Updated"
	require.NoError(t, repo.UpdateVideo(context.Background(), video))

	retrieved, err := repo.GetVideoByYouTubeID(context.Background(), "abc123def45")
	require.NoError(t, err)
	assert.Equal(t, "Updated", retrieved.Title)
}

func TestRepository_DeleteVideoNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	err := repo.DeleteVideo(context.Background(), 9999)
	assert.True(t, IsNotFound(err))
}
