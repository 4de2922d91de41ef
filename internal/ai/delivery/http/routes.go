package http

import (
	"atomic-scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. AI routes
// are rate limited per user on top of Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, perMinute int) {
	aiGroup := rg.Group("/ai")
	{
		aiGroup.POST("/onboarding", mw.Auth(), mw.RateLimit(perMinute), h.Onboarding)
		aiGroup.POST("/optimize", mw.Auth(), mw.RateLimit(perMinute), h.Optimize)
		aiGroup.POST("/research", mw.Auth(), mw.RateLimit(perMinute), h.Research)
	}
}
