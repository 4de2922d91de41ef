package http

import (
	"github.com/gin-gonic/gin"
)

// processOnboardingReq binds and validates the onboarding request body.
func (h *handler) processOnboardingReq(c *gin.Context) (onboardingReq, error) {
	var req onboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processOptimizeReq binds and validates the optimize request body.
func (h *handler) processOptimizeReq(c *gin.Context) (optimizeReq, error) {
	var req optimizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processResearchReq binds and validates the research request body.
func (h *handler) processResearchReq(c *gin.Context) (researchReq, error) {
	var req researchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
