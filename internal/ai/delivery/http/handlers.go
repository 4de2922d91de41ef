package http

import (
	"github.com/gin-gonic/gin"

	"atomic-scheduler/internal/middleware"
	"atomic-scheduler/pkg/response"
)

// Onboarding godoc
// @Summary     Generate an onboarding plan
// @Description Turns free-text onboarding answers into an initial task list with insights and recommendations. Serves deterministic fallback content when the LLM is unavailable.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Caller user ID"
// @Param       body      body   onboardingReq true "Onboarding answers"
// @Success     200 {object} onboardingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/onboarding [POST]
func (h *handler) Onboarding(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOnboardingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateOnboardingPlan(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateOnboardingPlan: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newOnboardingResp(output))
}

// Optimize godoc
// @Summary     Optimize current tasks
// @Description Reviews the caller's current tasks against a stated goal and proposes adjustments.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user ID"
// @Param       body      body   optimizeReq true "Current tasks and goal"
// @Success     200 {object} optimizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/optimize [POST]
func (h *handler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOptimizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.OptimizeTasks(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.OptimizeTasks: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newOptimizeResp(output))
}

// Research godoc
// @Summary     Research goal best practices
// @Description Returns best practices, time allocations, and supporting evidence for free-text goals.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user ID"
// @Param       body      body   researchReq true "Goals"
// @Success     200 {object} researchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/research [POST]
func (h *handler) Research(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ResearchGoals(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ResearchGoals: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newResearchResp(output))
}
