package http

import (
	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
)

// --- Shared DTOs ---

type timeSlotBody struct {
	Activity     string `json:"activity"     binding:"max=255"`
	Time         string `json:"time"         binding:"max=64"`
	Duration     int    `json:"duration"`
	Category     string `json:"category"     binding:"max=100"`
	IsCommitment bool   `json:"isCommitment"`
}

func (b timeSlotBody) toModel() model.TimeSlot {
	return model.TimeSlot{
		Activity:     b.Activity,
		Time:         b.Time,
		Duration:     b.Duration,
		Category:     b.Category,
		IsCommitment: b.IsCommitment,
	}
}

func newTimeSlotBody(s model.TimeSlot) timeSlotBody {
	return timeSlotBody{
		Activity:     s.Activity,
		Time:         s.Time,
		Duration:     s.Duration,
		Category:     s.Category,
		IsCommitment: s.IsCommitment,
	}
}

type scheduleBody struct {
	TimeSlots             []timeSlotBody `json:"timeSlots"`
	Summary               string         `json:"summary"`
	OptimizationReasoning string         `json:"optimizationReasoning"`
	Confidence            float64        `json:"confidence"`
}

func (b scheduleBody) toModel() model.Schedule {
	slots := make([]model.TimeSlot, len(b.TimeSlots))
	for i, s := range b.TimeSlots {
		slots[i] = s.toModel()
	}
	return model.Schedule{
		TimeSlots:             slots,
		Summary:               b.Summary,
		OptimizationReasoning: b.OptimizationReasoning,
		Confidence:            b.Confidence,
	}
}

func newScheduleBody(s model.Schedule) scheduleBody {
	slots := make([]timeSlotBody, len(s.TimeSlots))
	for i, slot := range s.TimeSlots {
		slots[i] = newTimeSlotBody(slot)
	}
	return scheduleBody{
		TimeSlots:             slots,
		Summary:               s.Summary,
		OptimizationReasoning: s.OptimizationReasoning,
		Confidence:            s.Confidence,
	}
}

// --- Request DTOs ---

type generateReq struct {
	Goals       string         `json:"goals"      binding:"required,min=1,max=2000"`
	Occupation  string         `json:"occupation" binding:"max=255"`
	WakeTime    string         `json:"wake_time"  binding:"max=16"`
	SleepTime   string         `json:"sleep_time" binding:"max=16"`
	WorkStyle   string         `json:"work_style" binding:"max=255"`
	Commitments []timeSlotBody `json:"commitments"`
}

func (r generateReq) validate() error { return nil }

func (r generateReq) toInput() ai.GenerateScheduleInput {
	commitments := make([]model.TimeSlot, len(r.Commitments))
	for i, c := range r.Commitments {
		commitments[i] = c.toModel()
	}
	return ai.GenerateScheduleInput{
		Preferences: ai.UserPreferences{
			Goals:       r.Goals,
			Occupation:  r.Occupation,
			WakeTime:    r.WakeTime,
			SleepTime:   r.SleepTime,
			WorkStyle:   r.WorkStyle,
			Commitments: commitments,
		},
	}
}

// ---

type scheduleReq struct {
	Schedule scheduleBody `json:"schedule" binding:"required"`
}

func (r scheduleReq) validate() error { return nil }

func (r scheduleReq) toSchedule() model.Schedule { return r.Schedule.toModel() }

// ---

type convertReq struct {
	Schedule                scheduleBody `json:"schedule"    binding:"required"`
	TargetDate              string       `json:"target_date" binding:"required,datetime=2006-01-02"`
	PreserveExistingTasks   bool         `json:"preserve_existing_tasks"`
	CreateMissingCategories bool         `json:"create_missing_categories"`
}

func (r convertReq) validate() error { return nil }

func (r convertReq) toInput() schedule.ConvertInput {
	return schedule.ConvertInput{
		Schedule:                r.Schedule.toModel(),
		TargetDate:              r.TargetDate,
		PreserveExistingTasks:   r.PreserveExistingTasks,
		CreateMissingCategories: r.CreateMissingCategories,
	}
}

// ---

type suggestReq struct {
	Duration int    `json:"duration" binding:"required,min=1,max=480"`
	Block    string `json:"block"    binding:"omitempty,oneof=morning afternoon evening"`
	Date     string `json:"date"     binding:"required,datetime=2006-01-02"`
}

func (r suggestReq) validate() error { return nil }

func (r suggestReq) toInput() schedule.SuggestInput {
	return schedule.SuggestInput{
		Duration: r.Duration,
		Block:    r.Block,
		Date:     r.Date,
	}
}

// --- Response DTOs ---

type generateResp struct {
	Schedule       scheduleBody `json:"schedule"`
	Fallback       bool         `json:"fallback"`
	FallbackReason string       `json:"fallback_reason,omitempty"`
}

func (h *handler) newGenerateResp(out ai.GenerateScheduleOutput) generateResp {
	return generateResp{
		Schedule:       newScheduleBody(out.Schedule),
		Fallback:       out.Fallback,
		FallbackReason: string(out.FallbackReason),
	}
}

type validateResp struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (h *handler) newValidateResp(out schedule.ValidateOutput) validateResp {
	return validateResp{Valid: out.Valid, Errors: out.Errors}
}

type optimizeResp struct {
	Schedule scheduleBody `json:"schedule"`
	Adjusted int          `json:"adjusted"`
}

func (h *handler) newOptimizeResp(out schedule.OptimizeOutput) optimizeResp {
	return optimizeResp{
		Schedule: newScheduleBody(out.Schedule),
		Adjusted: out.Adjusted,
	}
}

type previewResp struct {
	Conflicts     []string `json:"conflicts"`
	Warnings      []string `json:"warnings"`
	NewCategories []string `json:"new_categories"`
}

func (h *handler) newPreviewResp(out schedule.PreviewOutput) previewResp {
	return previewResp{
		Conflicts:     out.Conflicts,
		Warnings:      out.Warnings,
		NewCategories: out.NewCategories,
	}
}

type skippedSlotResp struct {
	Slot   timeSlotBody `json:"slot"`
	Reason string       `json:"reason"`
}

type slotErrorResp struct {
	Activity string `json:"activity"`
	Message  string `json:"message"`
}

type convertResp struct {
	Created           []createdTaskResp `json:"created"`
	Skipped           []skippedSlotResp `json:"skipped"`
	CreatedCategories []string          `json:"created_categories"`
	Errors            []slotErrorResp   `json:"errors"`
}

type createdTaskResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Category string `json:"category"`
	Block    string `json:"block"`
	Date     string `json:"date"`
}

func (h *handler) newConvertResp(out schedule.ConvertOutput) convertResp {
	created := make([]createdTaskResp, len(out.Created))
	for i, t := range out.Created {
		created[i] = createdTaskResp{
			ID:       t.ID,
			Name:     t.Name,
			Time:     t.Time,
			Duration: t.Duration,
			Category: t.Category,
			Block:    t.Block,
			Date:     t.Date,
		}
	}
	skipped := make([]skippedSlotResp, len(out.Skipped))
	for i, s := range out.Skipped {
		skipped[i] = skippedSlotResp{Slot: newTimeSlotBody(s.Slot), Reason: s.Reason}
	}
	errs := make([]slotErrorResp, len(out.Errors))
	for i, e := range out.Errors {
		errs[i] = slotErrorResp{Activity: e.Activity, Message: e.Message}
	}
	return convertResp{
		Created:           created,
		Skipped:           skipped,
		CreatedCategories: out.CreatedCategories,
		Errors:            errs,
	}
}

type slotCandidateResp struct {
	Time  string `json:"time"`
	Start int    `json:"start"`
	Block string `json:"block"`
}

type suggestResp struct {
	Candidates []slotCandidateResp `json:"candidates"`
}

func (h *handler) newSuggestResp(out schedule.SuggestOutput) suggestResp {
	candidates := make([]slotCandidateResp, len(out.Candidates))
	for i, c := range out.Candidates {
		candidates[i] = slotCandidateResp{
			Time:  c.Time,
			Start: c.Range.Start,
			Block: string(c.Block),
		}
	}
	return suggestResp{Candidates: candidates}
}
