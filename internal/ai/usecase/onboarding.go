package usecase

import (
	"context"
	"fmt"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
)

type onboardingPayload struct {
	Tasks           []model.TimeSlot `json:"tasks"`
	Insights        []string         `json:"insights"`
	Recommendations []string         `json:"recommendations"`
}

// GenerateOnboardingPlan turns onboarding answers into an initial task
// list. Any LLM failure degrades to the rule-table fallback.
func (uc *implUseCase) GenerateOnboardingPlan(ctx context.Context, sc model.Scope, input ai.OnboardingInput) (ai.OnboardingOutput, error) {
	userPrompt := fmt.Sprintf(
		"Goals: %s\nOccupation: %s\nConstraints: %s\nAwake from %s to %s.\nPropose an initial set of daily tasks with insights and recommendations.",
		input.Goals, input.Occupation, input.Constraints, input.WakeTime, input.SleepTime,
	)

	var payload onboardingPayload
	reason := uc.completeJSON(ctx, onboardingSystemPrompt, userPrompt, &payload)
	if reason == ai.FallbackNone && len(payload.Tasks) == 0 {
		reason = ai.FallbackBadPayload
	}
	if reason != ai.FallbackNone {
		uc.l.Infof(ctx, "uc.GenerateOnboardingPlan falling back (%s)", reason)
		return fallbackOnboarding(input, reason), nil
	}

	return ai.OnboardingOutput{
		Tasks:           payload.Tasks,
		Insights:        payload.Insights,
		Recommendations: payload.Recommendations,
	}, nil
}
