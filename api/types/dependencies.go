package types

import (
	"github.com/warpedwall/ninja-index/internal/database"
	"github.com/warpedwall/ninja-index/internal/services/appearances"
	"github.com/warpedwall/ninja-index/internal/services/athletes"
	"github.com/warpedwall/ninja-index/internal/services/processing"
	"github.com/warpedwall/ninja-index/internal/services/search"
	"github.com/warpedwall/ninja-index/internal/services/videos"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	AthleteService    athletes.AthleteService
	AthleteRepository athletes.AthleteRepository
	VideoService      videos.VideoService
	SearchService     search.SearchService
	ProcessingService processing.ProcessingService
	AppearanceService appearances.AppearanceService
}
