package usecase

import (
	"context"
	"fmt"
	"strings"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
)

// GenerateSchedule builds a full day plan from user preferences. The
// LLM response is the model.Schedule wire shape; a missing or empty slot
// list counts as a bad payload and triggers fallback synthesis.
func (uc *implUseCase) GenerateSchedule(ctx context.Context, sc model.Scope, input ai.GenerateScheduleInput) (ai.GenerateScheduleOutput, error) {
	prefs := input.Preferences

	var commitments []string
	for _, c := range prefs.Commitments {
		commitments = append(commitments, fmt.Sprintf("- %s at %s for %d min", c.Activity, c.Time, c.Duration))
	}
	userPrompt := fmt.Sprintf(
		"Goals: %s\nOccupation: %s\nAwake from %s to %s.\nWork style: %s\nFixed commitments:\n%s\nBuild a full day schedule.",
		prefs.Goals, prefs.Occupation, prefs.WakeTime, prefs.SleepTime, prefs.WorkStyle,
		strings.Join(commitments, "\n"),
	)

	var payload model.Schedule
	reason := uc.completeJSON(ctx, scheduleSystemPrompt, userPrompt, &payload)
	if reason == ai.FallbackNone && len(payload.TimeSlots) == 0 {
		reason = ai.FallbackBadPayload
	}
	if reason != ai.FallbackNone {
		uc.l.Infof(ctx, "uc.GenerateSchedule falling back (%s)", reason)
		return fallbackSchedule(prefs, reason), nil
	}

	return ai.GenerateScheduleOutput{Schedule: payload}, nil
}
