package processing

import (
	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
)

// RegisterRoutes registers processing routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /processing prefix
	router.POST("/videos", Post(deps))
}
