package ai

import (
	"context"

	"atomic-scheduler/internal/model"
)

// UseCase is the LLM orchestration entry point. Every operation degrades
// to deterministic fallback content on any LLM failure; callers never see
// a hard error from the generation path itself.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// GenerateOnboardingPlan turns free-text onboarding answers into an
	// initial task list with insights and recommendations.
	GenerateOnboardingPlan(ctx context.Context, sc model.Scope, input OnboardingInput) (OnboardingOutput, error)

	// OptimizeTasks reviews the user's current tasks against a stated
	// goal and proposes adjustments.
	OptimizeTasks(ctx context.Context, sc model.Scope, input OptimizeInput) (OptimizeOutput, error)

	// ResearchGoals returns best practices, time allocations, and
	// supporting evidence for the user's goals.
	ResearchGoals(ctx context.Context, sc model.Scope, input ResearchInput) (ResearchOutput, error)

	// GenerateSchedule builds a full day schedule from user preferences.
	GenerateSchedule(ctx context.Context, sc model.Scope, input GenerateScheduleInput) (GenerateScheduleOutput, error)
}
