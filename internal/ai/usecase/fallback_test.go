package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
)

func TestGenerateScheduleFallback(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Missing API Key Never Errors", func(t *testing.T) {
		uc := New(nil, "", &mockLogger{})
		out, err := uc.GenerateSchedule(ctx, sc, ai.GenerateScheduleInput{
			Preferences: ai.UserPreferences{Goals: "get organized"},
		})
		if err != nil {
			t.Fatalf("fallback path must not error, got %v", err)
		}
		if len(out.Schedule.TimeSlots) == 0 {
			t.Fatal("expected non-empty fallback schedule")
		}
		if !out.Fallback || out.FallbackReason != ai.FallbackNotConfigured {
			t.Errorf("expected not_configured fallback, got %v/%v", out.Fallback, out.FallbackReason)
		}
	})

	t.Run("Commitments Are Preserved", func(t *testing.T) {
		uc := New(nil, "", &mockLogger{})
		out, err := uc.GenerateSchedule(ctx, sc, ai.GenerateScheduleInput{
			Preferences: ai.UserPreferences{
				Goals: "improve fitness",
				Commitments: []model.TimeSlot{
					{Activity: "Team standup", Time: "9:30 AM", Duration: 15, Category: "Work"},
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, slot := range out.Schedule.TimeSlots {
			if slot.Activity == "Team standup" {
				found = true
				if !slot.IsCommitment {
					t.Error("expected the commitment flag set on preserved slots")
				}
			}
		}
		if !found {
			t.Error("expected the user commitment in the fallback schedule")
		}
	})

	t.Run("API Error Falls Back", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("API error 500: upstream down")}
		uc := New(llm, "sonar", &mockLogger{})
		out, err := uc.GenerateSchedule(ctx, sc, ai.GenerateScheduleInput{
			Preferences: ai.UserPreferences{Goals: "study for exams"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FallbackReason != ai.FallbackAPIError {
			t.Errorf("expected api_error, got %v", out.FallbackReason)
		}
	})

	t.Run("Malformed JSON Falls Back", func(t *testing.T) {
		llm := &mockLLM{response: reply("I think your schedule should be...")}
		uc := New(llm, "sonar", &mockLogger{})
		out, err := uc.GenerateSchedule(ctx, sc, ai.GenerateScheduleInput{
			Preferences: ai.UserPreferences{Goals: "study"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FallbackReason != ai.FallbackBadPayload {
			t.Errorf("expected bad_payload, got %v", out.FallbackReason)
		}
	})

	t.Run("Fenced JSON Is Accepted", func(t *testing.T) {
		llm := &mockLLM{response: reply("```json\n{\"timeSlots\":[{\"activity\":\"Deep work\",\"time\":\"9:00 AM\",\"duration\":90,\"category\":\"Work\",\"isCommitment\":false}],\"summary\":\"ok\",\"confidence\":0.9}\n```")}
		uc := New(llm, "sonar", &mockLogger{})
		out, err := uc.GenerateSchedule(ctx, sc, ai.GenerateScheduleInput{
			Preferences: ai.UserPreferences{Goals: "work"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Fallback {
			t.Fatalf("expected the LLM response to be used, fell back (%s)", out.FallbackReason)
		}
		if len(out.Schedule.TimeSlots) != 1 || out.Schedule.TimeSlots[0].Activity != "Deep work" {
			t.Errorf("unexpected parsed schedule %+v", out.Schedule)
		}
	})
}

func TestResearchFallback(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Fitness And Programming Goals", func(t *testing.T) {
		uc := New(nil, "", &mockLogger{})
		out, err := uc.ResearchGoals(ctx, sc, ai.ResearchInput{Goals: "improve fitness and learn programming"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		hasFitness, hasProgramming := false, false
		for _, p := range out.Practices {
			lower := strings.ToLower(p)
			if strings.Contains(lower, "workout") || strings.Contains(lower, "cardio") {
				hasFitness = true
			}
			if strings.Contains(lower, "project") || strings.Contains(lower, "code") {
				hasProgramming = true
			}
		}
		if !hasFitness || !hasProgramming {
			t.Errorf("expected fitness and programming practices, got %v", out.Practices)
		}

		if _, ok := out.TimeAllocations["fitness"]; !ok {
			t.Error("expected a fitness time allocation")
		}
		if _, ok := out.TimeAllocations["programming"]; !ok {
			t.Error("expected a programming time allocation")
		}
	})

	t.Run("Unmatched Goals Use General Profile", func(t *testing.T) {
		uc := New(nil, "", &mockLogger{})
		out, err := uc.ResearchGoals(ctx, sc, ai.ResearchInput{Goals: "be a better person"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Practices) == 0 || len(out.TimeAllocations) == 0 {
			t.Errorf("expected general fallback content, got %+v", out)
		}
	})
}

func TestOnboardingFallback(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Student Goals Yield Study Tasks", func(t *testing.T) {
		uc := New(nil, "", &mockLogger{})
		out, err := uc.GenerateOnboardingPlan(ctx, sc, ai.OnboardingInput{Goals: "pass my university exams"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) == 0 {
			t.Fatal("expected non-empty fallback tasks")
		}
		found := false
		for _, task := range out.Tasks {
			if strings.Contains(strings.ToLower(task.Activity), "study") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a study task for student goals, got %v", out.Tasks)
		}
	})
}

func TestOptimizeFallback(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Suggestions Track The Goal", func(t *testing.T) {
		uc := New(nil, "", &mockLogger{})
		out, err := uc.OptimizeTasks(ctx, sc, ai.OptimizeInput{OptimizationGoal: "more time at the gym"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) == 0 {
			t.Fatal("expected fallback suggestions")
		}
		if out.FallbackReason != ai.FallbackNotConfigured {
			t.Errorf("expected not_configured, got %v", out.FallbackReason)
		}
	})
}
