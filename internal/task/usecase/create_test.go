package usecase

import (
	"context"
	"errors"
	"testing"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/task"
	repo "atomic-scheduler/internal/task/repository"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Empty Name Error", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Name: "  ", Time: "9:00-10:00 AM", Date: "2026-09-01"})
		if !errors.Is(err, task.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("Malformed Time Error", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Name: "Gym", Time: "whenever", Date: "2026-09-01"})
		if !errors.Is(err, task.ErrInvalidTimeRange) {
			t.Errorf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("Missing Duration Error", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Name: "Gym", Start: 540, Date: "2026-09-01"})
		if !errors.Is(err, task.ErrInvalidDuration) {
			t.Errorf("expected ErrInvalidDuration, got %v", err)
		}
	})

	t.Run("Successful Create Stores Canonical Range", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		r := &mockRepo{
			createFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: "t1", Name: opt.Name, Time: opt.Time, Start: opt.Start, Duration: opt.Duration}, nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		out, err := uc.Create(ctx, sc, task.CreateTaskInput{
			Name: "Gym", Time: "9:00-10:30 AM", Category: "Health", Date: "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Start != 540 || captured.Duration != 90 {
			t.Errorf("expected canonical 540/90, got %d/%d", captured.Start, captured.Duration)
		}
		if captured.Time != "9:00 AM-10:30 AM" {
			t.Errorf("unexpected formatted range %q", captured.Time)
		}
		if captured.Block != "morning" {
			t.Errorf("expected morning block, got %q", captured.Block)
		}
		if out.Task.ID != "t1" {
			t.Errorf("unexpected output task %+v", out.Task)
		}
	})

	t.Run("Start And Duration Without Display String", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		r := &mockRepo{
			createFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: "t1"}, nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Name: "Call", Start: 840, Duration: 30, Date: "2026-09-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Time != "2:00 PM-2:30 PM" {
			t.Errorf("expected rendered display range, got %q", captured.Time)
		}
	})

	t.Run("Conflict Returns Suggestions", func(t *testing.T) {
		r := &mockRepo{
			listFunc: func(opt repo.ListTasksOptions) ([]model.Task, int, error) {
				return []model.Task{{ID: "t1", Start: 540, Duration: 60, Time: "9:00 AM-10:00 AM"}}, 1, nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Name: "Standup", Time: "9:30-9:45 AM", Date: "2026-09-01"})

		var conflict *task.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if len(conflict.Suggestions) == 0 {
			t.Fatal("expected alternative slots in the conflict error")
		}
		if conflict.Suggestions[0] != "6:00 AM-6:15 AM" {
			t.Errorf("expected earliest-first suggestion, got %q", conflict.Suggestions[0])
		}
	})

	t.Run("Boundary Touch Is Not A Conflict", func(t *testing.T) {
		r := &mockRepo{
			listFunc: func(opt repo.ListTasksOptions) ([]model.Task, int, error) {
				return []model.Task{{ID: "t1", Start: 540, Duration: 60, Time: "9:00 AM-10:00 AM"}}, 1, nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Name: "Next", Time: "10:00-11:00 AM", Date: "2026-09-01"})
		if err != nil {
			t.Errorf("back-to-back tasks must not conflict, got %v", err)
		}
	})

	t.Run("Category Resolution Failure Propagates", func(t *testing.T) {
		catUC := &mockCategoryUC{
			resolveFunc: func(name string) (model.Category, bool, error) {
				return model.Category{}, false, errors.New("db down")
			},
		}
		uc := New(&mockRepo{}, catUC, &mockLogger{})
		_, err := uc.Create(ctx, sc, task.CreateTaskInput{Name: "Gym", Time: "9:00-10:00 AM", Date: "2026-09-01"})
		if err == nil {
			t.Error("expected resolution error to propagate")
		}
	})
}
