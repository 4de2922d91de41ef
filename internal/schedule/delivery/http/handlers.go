package http

import (
	"github.com/gin-gonic/gin"

	"atomic-scheduler/internal/middleware"
	"atomic-scheduler/pkg/response"
)

// Generate godoc
// @Summary     Generate a day schedule
// @Description Builds a full day schedule from user preferences via the LLM, with deterministic fallback when it is unavailable.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user ID"
// @Param       body      body   generateReq true "User preferences"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/schedule/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.aiUC.GenerateSchedule(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateSchedule: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Validate godoc
// @Summary     Validate a schedule
// @Description Checks a schedule for structural problems and pairwise slot overlaps.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user ID"
// @Param       body      body   scheduleReq true "Schedule to validate"
// @Success     200 {object} validateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output := h.uc.Validate(ctx, req.toSchedule())
	response.OK(c, h.newValidateResp(output))
}

// Optimize godoc
// @Summary     Optimize a schedule
// @Description Sorts slots by start time and shifts overlapping slots forward with a buffer.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user ID"
// @Param       body      body   scheduleReq true "Schedule to optimize"
// @Success     200 {object} optimizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/optimize [POST]
func (h *handler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output := h.uc.Optimize(ctx, req.toSchedule())
	response.OK(c, h.newOptimizeResp(output))
}

// Preview godoc
// @Summary     Preview a schedule conversion
// @Description Runs the converter's category-resolution and conflict logic without persisting anything.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller user ID"
// @Param       body      body   convertReq true "Schedule and conversion options"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConvertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Convert godoc
// @Summary     Convert a schedule into tasks
// @Description Materializes an AI schedule into persisted tasks. Per-slot failures are reported and do not abort the batch.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller user ID"
// @Param       body      body   convertReq true "Schedule and conversion options"
// @Success     200 {object} convertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/convert [POST]
func (h *handler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConvertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Convert(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Convert: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConvertResp(output))
}

// Suggest godoc
// @Summary     Suggest alternative slots
// @Description Returns non-conflicting placements for a duration within a preferred block on a given day.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller user ID"
// @Param       body      body   suggestReq true "Duration, block, and date"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}
