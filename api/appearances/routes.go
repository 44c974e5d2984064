package appearances

import (
	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
)

// RegisterRoutes registers appearance review routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /appearances prefix
	router.PATCH("/:id/verify", PatchVerify(deps))
}
