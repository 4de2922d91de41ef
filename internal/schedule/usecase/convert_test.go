package usecase

import (
	"context"
	"errors"
	"testing"

	"atomic-scheduler/config"
	"atomic-scheduler/internal/category"
	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
	repo "atomic-scheduler/internal/task/repository"
)

func newTestUseCase(taskRepo *mockTaskRepo, catUC *mockCategoryUC) *implUseCase {
	return New(taskRepo, catUC, nil, config.GoogleCalendarConfig{}, config.ScheduleConfig{
		BufferMinutes:     15,
		SuggestionCount:   3,
		SuggestionStepMin: 15,
	}, &mockLogger{})
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("New Category Creates One Category And One Task", func(t *testing.T) {
		created := 0
		catUC := &mockCategoryUC{
			listFunc: func(input category.ListCategoriesInput) (category.ListCategoriesOutput, error) {
				return category.ListCategoriesOutput{}, nil
			},
			resolveFunc: func(name string) (model.Category, bool, error) {
				created++
				return model.Category{ID: "cat-1", Name: name}, true, nil
			},
		}
		uc := newTestUseCase(&mockTaskRepo{}, catUC)

		out, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate:              "2026-09-01",
			CreateMissingCategories: true,
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "Deep work", Time: "9:00 AM", Duration: 60, Category: "engineering"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Created) != 1 {
			t.Fatalf("expected 1 created task, got %d", len(out.Created))
		}
		if created != 1 {
			t.Errorf("expected exactly one category resolution, got %d", created)
		}
		if len(out.CreatedCategories) != 1 || out.CreatedCategories[0] != "engineering" {
			t.Errorf("expected createdCategories [engineering], got %v", out.CreatedCategories)
		}
		if out.Created[0].Time != "9:00 AM-10:00 AM" {
			t.Errorf("unexpected formatted range: %q", out.Created[0].Time)
		}
	})

	t.Run("Known Label Is Normalized", func(t *testing.T) {
		catUC := &mockCategoryUC{
			listFunc: func(input category.ListCategoriesInput) (category.ListCategoriesOutput, error) {
				return category.ListCategoriesOutput{Categories: []model.Category{
					{ID: "cat-health", Name: "Health"},
				}}, nil
			},
		}
		uc := newTestUseCase(&mockTaskRepo{}, catUC)

		out, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate:              "2026-09-01",
			CreateMissingCategories: true,
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "Morning run", Time: "6:30 AM", Duration: 45, Category: "fitness"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Created) != 1 {
			t.Fatalf("expected 1 created task, got %d", len(out.Created))
		}
		if out.Created[0].Category != "Health" {
			t.Errorf("expected fitness label normalized to Health, got %q", out.Created[0].Category)
		}
		if len(out.CreatedCategories) != 0 {
			t.Errorf("expected no new categories, got %v", out.CreatedCategories)
		}
	})

	t.Run("Invalid Activity Produces Error And Continues", func(t *testing.T) {
		uc := newTestUseCase(&mockTaskRepo{}, &mockCategoryUC{})

		out, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate:              "2026-09-01",
			CreateMissingCategories: true,
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "", Time: "9:00 AM", Duration: 30, Category: "work"},
				{Activity: "Review PRs", Time: "10:00 AM", Duration: 30, Category: "work"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Errors) != 1 {
			t.Fatalf("expected 1 slot error, got %d", len(out.Errors))
		}
		if len(out.Created) != 1 || out.Created[0].Name != "Review PRs" {
			t.Errorf("expected processing to continue past the bad slot, created=%v", out.Created)
		}
	})

	t.Run("Preserve Existing Tasks Skips Overlaps", func(t *testing.T) {
		taskRepo := &mockTaskRepo{
			listFunc: func(opt repo.ListTasksOptions) ([]model.Task, int, error) {
				return []model.Task{{ID: "t1", Start: 540, Duration: 60, Time: "9:00 AM-10:00 AM"}}, 1, nil
			},
		}
		uc := newTestUseCase(taskRepo, &mockCategoryUC{})

		out, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate:              "2026-09-01",
			PreserveExistingTasks:   true,
			CreateMissingCategories: true,
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "Standup", Time: "9:30 AM", Duration: 15, Category: "work"},
				{Activity: "Lunch", Time: "12:00 PM", Duration: 45, Category: "personal"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Skipped) != 1 || out.Skipped[0].Slot.Activity != "Standup" {
			t.Fatalf("expected the overlapping slot skipped, got %+v", out.Skipped)
		}
		if len(out.Created) != 1 || out.Created[0].Name != "Lunch" {
			t.Errorf("expected only the free slot created, got %v", out.Created)
		}
	})

	t.Run("Intra Batch Overlap Skips Later Slot", func(t *testing.T) {
		uc := newTestUseCase(&mockTaskRepo{}, &mockCategoryUC{})

		out, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate:              "2026-09-01",
			CreateMissingCategories: true,
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "Focus block", Time: "2:00 PM", Duration: 120, Category: "work"},
				{Activity: "Call", Time: "3:00 PM", Duration: 30, Category: "work"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Created) != 1 || out.Created[0].Name != "Focus block" {
			t.Fatalf("expected first slot to win, got %v", out.Created)
		}
		if len(out.Skipped) != 1 || out.Skipped[0].Slot.Activity != "Call" {
			t.Errorf("expected later overlapping slot skipped, got %+v", out.Skipped)
		}
	})

	t.Run("Category Failure Falls Back To Default", func(t *testing.T) {
		catUC := &mockCategoryUC{
			resolveFunc: func(name string) (model.Category, bool, error) {
				if name == model.DefaultCategoryName {
					return model.Category{ID: "cat-default", Name: model.DefaultCategoryName}, false, nil
				}
				return model.Category{}, false, errors.New("constraint violation")
			},
		}
		uc := newTestUseCase(&mockTaskRepo{}, catUC)

		out, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate:              "2026-09-01",
			CreateMissingCategories: true,
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "Journal", Time: "8:00 PM", Duration: 20, Category: "mindfulness"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Created) != 1 {
			t.Fatalf("expected the slot to survive the category failure, got %d created", len(out.Created))
		}
		if out.Created[0].Category != model.DefaultCategoryName {
			t.Errorf("expected fallback category %q, got %q", model.DefaultCategoryName, out.Created[0].Category)
		}
	})

	t.Run("Creation Error Is Captured Per Slot", func(t *testing.T) {
		calls := 0
		taskRepo := &mockTaskRepo{
			createFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				calls++
				if calls == 1 {
					return model.Task{}, errors.New("insert failed")
				}
				return model.Task{ID: "t2", Name: opt.Name, Start: opt.Start, Duration: opt.Duration}, nil
			},
		}
		uc := newTestUseCase(taskRepo, &mockCategoryUC{})

		out, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate:              "2026-09-01",
			CreateMissingCategories: true,
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "Plan week", Time: "8:00 AM", Duration: 30, Category: "work"},
				{Activity: "Email", Time: "9:00 AM", Duration: 30, Category: "work"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Errors) != 1 || out.Errors[0].Activity != "Plan week" {
			t.Fatalf("expected per-slot error for the failed insert, got %+v", out.Errors)
		}
		if len(out.Created) != 1 || out.Created[0].Name != "Email" {
			t.Errorf("expected the batch to continue, created=%v", out.Created)
		}
	})

	t.Run("Empty Schedule Rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockTaskRepo{}, &mockCategoryUC{})
		_, err := uc.Convert(ctx, sc, schedule.ConvertInput{TargetDate: "2026-09-01"})
		if !errors.Is(err, schedule.ErrEmptySchedule) {
			t.Errorf("expected ErrEmptySchedule, got %v", err)
		}
	})

	t.Run("Bad Target Date Rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockTaskRepo{}, &mockCategoryUC{})
		_, err := uc.Convert(ctx, sc, schedule.ConvertInput{
			TargetDate: "09/01/2026",
			Schedule:   model.Schedule{TimeSlots: []model.TimeSlot{{Activity: "x", Time: "9:00 AM", Duration: 30}}},
		})
		if !errors.Is(err, schedule.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Reports Conflicts And New Categories Without Persisting", func(t *testing.T) {
		createCalls := 0
		taskRepo := &mockTaskRepo{
			listFunc: func(opt repo.ListTasksOptions) ([]model.Task, int, error) {
				return []model.Task{{ID: "t1", Start: 540, Duration: 60, Time: "9:00 AM-10:00 AM"}}, 1, nil
			},
			createFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				createCalls++
				return model.Task{}, nil
			},
		}
		uc := newTestUseCase(taskRepo, &mockCategoryUC{})

		out, err := uc.Preview(ctx, sc, schedule.ConvertInput{
			TargetDate: "2026-09-01",
			Schedule: model.Schedule{TimeSlots: []model.TimeSlot{
				{Activity: "Standup", Time: "9:30 AM", Duration: 15, Category: "work"},
				{Activity: "Read", Time: "8:00 PM", Duration: 30, Category: "books"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if createCalls != 0 {
			t.Fatalf("preview must not persist, saw %d creates", createCalls)
		}
		if len(out.Conflicts) != 1 {
			t.Errorf("expected 1 conflict, got %v", out.Conflicts)
		}
		if len(out.NewCategories) != 2 {
			t.Errorf("expected 2 new categories (Work, books), got %v", out.NewCategories)
		}
	})
}
