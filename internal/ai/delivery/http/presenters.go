package http

import (
	"errors"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
)

var errMissingGoals = errors.New("goals are required")

// --- Request DTOs ---

type onboardingReq struct {
	Goals       string `json:"goals"       binding:"required,min=1,max=2000"`
	Occupation  string `json:"occupation"  binding:"max=255"`
	Constraints string `json:"constraints" binding:"max=2000"`
	WakeTime    string `json:"wake_time"   binding:"max=16"`
	SleepTime   string `json:"sleep_time"  binding:"max=16"`
}

func (r onboardingReq) validate() error { return nil }

func (r onboardingReq) toInput() ai.OnboardingInput {
	return ai.OnboardingInput{
		Goals:       r.Goals,
		Occupation:  r.Occupation,
		Constraints: r.Constraints,
		WakeTime:    r.WakeTime,
		SleepTime:   r.SleepTime,
	}
}

// ---

type currentTaskReq struct {
	Name     string `json:"name"     binding:"required"`
	Time     string `json:"time"     binding:"max=64"`
	Category string `json:"category" binding:"max=100"`
	Duration int    `json:"duration" binding:"omitempty,min=1"`
}

type optimizeReq struct {
	CurrentTasks     []currentTaskReq `json:"current_tasks"`
	OptimizationGoal string           `json:"optimization_goal" binding:"required,min=1,max=2000"`
}

func (r optimizeReq) validate() error { return nil }

func (r optimizeReq) toInput() ai.OptimizeInput {
	tasks := make([]model.Task, len(r.CurrentTasks))
	for i, t := range r.CurrentTasks {
		tasks[i] = model.Task{
			Name:     t.Name,
			Time:     t.Time,
			Category: t.Category,
			Duration: t.Duration,
		}
	}
	return ai.OptimizeInput{
		CurrentTasks:     tasks,
		OptimizationGoal: r.OptimizationGoal,
	}
}

// ---

type researchReq struct {
	Goals string `json:"goals" binding:"required,min=1,max=2000"`
}

func (r researchReq) validate() error {
	if r.Goals == "" {
		return errMissingGoals
	}
	return nil
}

func (r researchReq) toInput() ai.ResearchInput {
	return ai.ResearchInput{Goals: r.Goals}
}

// --- Response DTOs ---

type timeSlotResp struct {
	Activity     string `json:"activity"`
	Time         string `json:"time"`
	Duration     int    `json:"duration"`
	Category     string `json:"category"`
	IsCommitment bool   `json:"isCommitment"`
}

func newTimeSlotResps(slots []model.TimeSlot) []timeSlotResp {
	out := make([]timeSlotResp, len(slots))
	for i, s := range slots {
		out[i] = timeSlotResp{
			Activity:     s.Activity,
			Time:         s.Time,
			Duration:     s.Duration,
			Category:     s.Category,
			IsCommitment: s.IsCommitment,
		}
	}
	return out
}

type onboardingResp struct {
	Tasks           []timeSlotResp `json:"tasks"`
	Insights        []string       `json:"insights"`
	Recommendations []string       `json:"recommendations"`
	Fallback        bool           `json:"fallback"`
	FallbackReason  string         `json:"fallback_reason,omitempty"`
}

func (h *handler) newOnboardingResp(out ai.OnboardingOutput) onboardingResp {
	return onboardingResp{
		Tasks:           newTimeSlotResps(out.Tasks),
		Insights:        out.Insights,
		Recommendations: out.Recommendations,
		Fallback:        out.Fallback,
		FallbackReason:  string(out.FallbackReason),
	}
}

type optimizeResp struct {
	Suggestions    []string `json:"suggestions"`
	Insights       []string `json:"insights"`
	Fallback       bool     `json:"fallback"`
	FallbackReason string   `json:"fallback_reason,omitempty"`
}

func (h *handler) newOptimizeResp(out ai.OptimizeOutput) optimizeResp {
	return optimizeResp{
		Suggestions:    out.Suggestions,
		Insights:       out.Insights,
		Fallback:       out.Fallback,
		FallbackReason: string(out.FallbackReason),
	}
}

type researchResp struct {
	Practices         []string          `json:"practices"`
	TimeAllocations   map[string]string `json:"timeAllocations"`
	ScientificBacking []string          `json:"scientificBacking"`
	Fallback          bool              `json:"fallback"`
	FallbackReason    string            `json:"fallback_reason,omitempty"`
}

func (h *handler) newResearchResp(out ai.ResearchOutput) researchResp {
	return researchResp{
		Practices:         out.Practices,
		TimeAllocations:   out.TimeAllocations,
		ScientificBacking: out.ScientificBacking,
		Fallback:          out.Fallback,
		FallbackReason:    string(out.FallbackReason),
	}
}
