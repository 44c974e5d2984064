package athletes

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
)

// GetSearch returns ranked name suggestions for a partial query
// @Summary      Search for athletes
// @Description  Returns ranked name suggestions for a partial, possibly misspelled athlete name. Matches indexed athletes and the known roster.
// @Tags         athletes
// @Produce      json
// @Param        q query string true "Partial athlete name"
// @Param        limit query int false "Maximum number of suggestions" default(10)
// @Success      200 {object} types.AthleteSearchResponse "Ranked suggestions"
// @Failure      400 {object} types.ErrorResponse "Bad request - missing query"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/athletes/search [get]
func GetSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Query parameter 'q' is required",
			})
			return
		}

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if limit < 1 || limit > 100 {
			limit = 10
		}

		matches, err := deps.SearchService.Search(c.Request.Context(), query, limit)
		if err != nil {
			log.Printf("[ERROR] Athlete search failed for %q: %v", query, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search failed",
			})
			return
		}

		c.JSON(http.StatusOK, types.AthleteSearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Query:        query,
			Matches:      types.MatchesFromSearch(matches),
			Count:        len(matches),
		})
	}
}
