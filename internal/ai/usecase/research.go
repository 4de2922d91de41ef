package usecase

import (
	"context"
	"fmt"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
)

type researchPayload struct {
	Practices         []string          `json:"practices"`
	TimeAllocations   map[string]string `json:"timeAllocations"`
	ScientificBacking []string          `json:"scientificBacking"`
}

// ResearchGoals summarizes evidence-based practices for the user's goals.
func (uc *implUseCase) ResearchGoals(ctx context.Context, sc model.Scope, input ai.ResearchInput) (ai.ResearchOutput, error) {
	userPrompt := fmt.Sprintf(
		"Goals: %s\nSummarize best practices, daily time allocations per goal domain, and supporting evidence.",
		input.Goals,
	)

	var payload researchPayload
	reason := uc.completeJSON(ctx, researchSystemPrompt, userPrompt, &payload)
	if reason == ai.FallbackNone && len(payload.Practices) == 0 {
		reason = ai.FallbackBadPayload
	}
	if reason != ai.FallbackNone {
		uc.l.Infof(ctx, "uc.ResearchGoals falling back (%s)", reason)
		return fallbackResearch(input, reason), nil
	}

	return ai.ResearchOutput{
		Practices:         payload.Practices,
		TimeAllocations:   payload.TimeAllocations,
		ScientificBacking: payload.ScientificBacking,
	}, nil
}
