package usecase

import (
	"context"
	"fmt"
	"strings"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
)

type optimizePayload struct {
	Suggestions []string `json:"suggestions"`
	Insights    []string `json:"insights"`
}

// OptimizeTasks reviews the current day plan against a stated goal.
func (uc *implUseCase) OptimizeTasks(ctx context.Context, sc model.Scope, input ai.OptimizeInput) (ai.OptimizeOutput, error) {
	var lines []string
	for _, t := range input.CurrentTasks {
		lines = append(lines, fmt.Sprintf("- %s (%s, %s, %d min)", t.Name, t.Time, t.Category, t.Duration))
	}
	userPrompt := fmt.Sprintf(
		"Current tasks:\n%s\nOptimization goal: %s\nSuggest concrete adjustments.",
		strings.Join(lines, "\n"), input.OptimizationGoal,
	)

	var payload optimizePayload
	reason := uc.completeJSON(ctx, optimizeSystemPrompt, userPrompt, &payload)
	if reason == ai.FallbackNone && len(payload.Suggestions) == 0 {
		reason = ai.FallbackBadPayload
	}
	if reason != ai.FallbackNone {
		uc.l.Infof(ctx, "uc.OptimizeTasks falling back (%s)", reason)
		return fallbackOptimize(input, reason), nil
	}

	return ai.OptimizeOutput{
		Suggestions: payload.Suggestions,
		Insights:    payload.Insights,
	}, nil
}
