package http

import (
	"atomic-scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Generate
// hits the LLM, so it shares the AI rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, aiPerMinute int) {
	sched := rg.Group("/schedule")
	{
		sched.POST("/generate", mw.Auth(), mw.RateLimit(aiPerMinute), h.Generate)
		sched.POST("/validate", mw.Auth(), h.Validate)
		sched.POST("/optimize", mw.Auth(), h.Optimize)
		sched.POST("/preview", mw.Auth(), h.Preview)
		sched.POST("/convert", mw.Auth(), h.Convert)
		sched.POST("/suggest", mw.Auth(), h.Suggest)
	}
}
