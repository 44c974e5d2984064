package athletes

import (
	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
)

// RegisterRoutes registers athlete routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /athletes prefix
	router.GET("/search", GetSearch(deps))
	router.GET("/:id", GetByID(deps))
}
