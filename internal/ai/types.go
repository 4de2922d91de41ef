package ai

import "atomic-scheduler/internal/model"

// FallbackReason classifies why a response was synthesized instead of
// produced by the LLM. Empty means the LLM answered.
type FallbackReason string

const (
	FallbackNone          FallbackReason = ""
	FallbackNotConfigured FallbackReason = "not_configured"
	FallbackAPIError      FallbackReason = "api_error"
	FallbackBadPayload    FallbackReason = "bad_payload"
)

// --- UseCase Inputs ---

// OnboardingInput carries the user's free-text onboarding answers.
type OnboardingInput struct {
	Goals       string
	Occupation  string
	Constraints string
	WakeTime    string // "H:MM AM/PM"
	SleepTime   string
}

type OptimizeInput struct {
	CurrentTasks     []model.Task
	OptimizationGoal string
}

type ResearchInput struct {
	Goals string
}

// UserPreferences is the schedule-generation questionnaire payload.
type UserPreferences struct {
	Goals       string
	Occupation  string
	WakeTime    string
	SleepTime   string
	WorkStyle   string           // e.g. "deep focus mornings"
	Commitments []model.TimeSlot // fixed appointments, always preserved
}

type GenerateScheduleInput struct {
	Preferences UserPreferences
}

// --- UseCase Outputs ---

type OnboardingOutput struct {
	Tasks           []model.TimeSlot
	Insights        []string
	Recommendations []string
	Fallback        bool
	FallbackReason  FallbackReason
}

type OptimizeOutput struct {
	Suggestions    []string
	Insights       []string
	Fallback       bool
	FallbackReason FallbackReason
}

type ResearchOutput struct {
	Practices         []string
	TimeAllocations   map[string]string // domain -> recommended time budget
	ScientificBacking []string
	Fallback          bool
	FallbackReason    FallbackReason
}

type GenerateScheduleOutput struct {
	Schedule       model.Schedule
	Fallback       bool
	FallbackReason FallbackReason
}
