package athletes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
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

func TestRepository_CreateAthlete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	athlete := &models.Athlete{
		DisplayName: "Jessie Graff",
		Aliases:     datatypes.JSONSlice[string]{"Jesse Graff"},
	}

	err := repo.CreateAthlete(context.Background(), athlete)
	require.NoError(t, err)
	assert.NotZero(t, athlete.ID)

	var retrieved models.Athlete
	err = db.First(&retrieved, athlete.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "Jessie Graff", retrieved.DisplayName)
	assert.Equal(t, datatypes.JSONSlice[string]{"Jesse Graff"}, retrieved.Aliases)
}

func TestRepository_CreateAthleteDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.CreateAthlete(context.Background(), &models.Athlete{DisplayName: "Daniel Gil"}))

	err := repo.CreateAthlete(context.Background(), &models.Athlete{DisplayName: "Daniel Gil"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRepository_GetAthleteByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.CreateAthlete(context.Background(), &models.Athlete{DisplayName: "Joe Moravsky"}))

	athlete, err := repo.GetAthleteByName(context.Background(), "joe moravsky")
	require.NoError(t, err)
	assert.Equal(t, "Joe Moravsky", athlete.DisplayName)

	_, err = repo.GetAthleteByName(context.Background(), "Nobody Here")
	assert.True(t, IsNotFound(err))
}

func TestRepository_GetAthleteByIDPreloadsAppearances(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	athlete := &models.Athlete{DisplayName: "Vance Walker"}
	require.NoError(t, repo.CreateAthlete(context.Background(), athlete))

	video := &models.Video{YouTubeID: "abc123def45", Title: "Finals"}
	require.NoError(t, db.Create(video).Error)

	// Insert out of order so the timestamp ordering is observable
	for _, ts := range []int{300, 10, 125} {
		require.NoError(t, db.Create(&models.AthleteAppearance{
			AthleteID:        athlete.ID,
			VideoID:          video.ID,
			TimestampSeconds: ts,
			Confidence:       0.9,
		}).Error)
	}

	retrieved, err := repo.GetAthleteByID(context.Background(), athlete.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Appearances, 3)
	assert.Equal(t, 10, retrieved.Appearances[0].TimestampSeconds)
	assert.Equal(t, 125, retrieved.Appearances[1].TimestampSeconds)
	assert.Equal(t, 300, retrieved.Appearances[2].TimestampSeconds)
	assert.Equal(t, "abc123def45", retrieved.Appearances[0].Video.YouTubeID)
}

func TestRepository_GetAthleteByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetAthleteByID(context.Background(), 9999)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, ErrAthleteNotFound)
}

func TestRepository_ListAthletesWithCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	graff := &models.Athlete{DisplayName: "Jessie Graff"}
	gil := &models.Athlete{DisplayName: "Daniel Gil"}
	require.NoError(t, repo.CreateAthlete(context.Background(), graff))
	require.NoError(t, repo.CreateAthlete(context.Background(), gil))

	video := &models.Video{YouTubeID: "abc123def45"}
	require.NoError(t, db.Create(video).Error)
	for _, ts := range []int{10, 20} {
		require.NoError(t, db.Create(&models.AthleteAppearance{
			AthleteID: graff.ID, VideoID: video.ID, TimestampSeconds: ts,
		}).Error)
	}

	rows, err := repo.ListAthletesWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by display name, with per-athlete appearance counts
	assert.Equal(t, "Daniel Gil", rows[0].DisplayName)
	assert.Equal(t, 0, rows[0].AppearanceCount)
	assert.Equal(t, "Jessie Graff", rows[1].DisplayName)
	assert.Equal(t, 2, rows[1].AppearanceCount)
}

func TestRepository_AddAlias(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	athlete := &models.Athlete{DisplayName: "Najee Richardson"}
	require.NoError(t, repo.CreateAthlete(context.Background(), athlete))

	require.NoError(t, repo.AddAlias(context.Background(), athlete.ID, "The Phoenix"))
	// Same alias in a different case is a no-op
	require.NoError(t, repo.AddAlias(context.Background(), athlete.ID, "the phoenix"))

	retrieved, err := repo.GetAthleteByID(context.Background(), athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, datatypes.JSONSlice[string]{"The Phoenix"}, retrieved.Aliases)
}

func TestRepository_AddAliasNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	err := repo.AddAlias(context.Background(), 9999, "Ghost")
	assert.True(t, IsNotFound(err))
}

func TestRepository_DeleteAthlete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	athlete := &models.Athlete{DisplayName: "Drew Drechsel"}
	require.NoError(t, repo.CreateAthlete(context.Background(), athlete))
	require.NoError(t, repo.DeleteAthlete(context.Background(), athlete.ID))

	_, err := repo.GetAthleteByID(context.Background(), athlete.ID)
	assert.True(t, IsNotFound(err))
}
