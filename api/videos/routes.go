package videos

import (
	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
)

// RegisterRoutes registers video routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /videos prefix
	router.GET("", GetAll(deps))
	router.GET("/:id", GetByID(deps))
	router.DELETE("/:id", Delete(deps))
}
