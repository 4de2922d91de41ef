package usecase

import (
	"context"
	"errors"
	"testing"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/task"
	repo "atomic-scheduler/internal/task/repository"
)

func existingTask() model.Task {
	return model.Task{
		ID:         "t1",
		UserID:     "u1",
		Name:       "Gym",
		Time:       "9:00 AM-10:00 AM",
		Start:      540,
		Duration:   60,
		CategoryID: "cat-health",
		Category:   "Health",
		Block:      "morning",
		Date:       "2026-09-01",
	}
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Detail(ctx, sc, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Found", func(t *testing.T) {
		r := &mockRepo{
			getFunc: func(opt repo.GetOneTaskOptions) (model.Task, error) {
				if opt.ID != "t1" || opt.UserID != "u1" {
					t.Errorf("unexpected lookup options %+v", opt)
				}
				return existingTask(), nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		out, err := uc.Detail(ctx, sc, "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Name != "Gym" {
			t.Errorf("unexpected task %+v", out.Task)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "missing", Name: "x"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Time Change Excludes Own Range From Conflict Check", func(t *testing.T) {
		r := &mockRepo{
			getFunc: func(opt repo.GetOneTaskOptions) (model.Task, error) {
				return existingTask(), nil
			},
			listFunc: func(opt repo.ListTasksOptions) ([]model.Task, int, error) {
				return []model.Task{existingTask()}, 1, nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		// Shifting within the task's own old range must not self-conflict.
		out, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "t1", Time: "9:15-10:15 AM"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Start != 555 || out.Task.Duration != 60 {
			t.Errorf("expected 555/60, got %d/%d", out.Task.Start, out.Task.Duration)
		}
	})

	t.Run("Time Change Conflicting With Another Task", func(t *testing.T) {
		other := existingTask()
		other.ID = "t2"
		other.Start = 660
		other.Time = "11:00 AM-12:00 PM"
		r := &mockRepo{
			getFunc: func(opt repo.GetOneTaskOptions) (model.Task, error) {
				return existingTask(), nil
			},
			listFunc: func(opt repo.ListTasksOptions) ([]model.Task, int, error) {
				return []model.Task{existingTask(), other}, 2, nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "t1", Time: "11:30 AM-12:00 PM"})

		var conflict *task.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("Duration Only Update", func(t *testing.T) {
		var captured repo.UpdateTaskOptions
		r := &mockRepo{
			getFunc: func(opt repo.GetOneTaskOptions) (model.Task, error) {
				return existingTask(), nil
			},
			updateFunc: func(opt repo.UpdateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: opt.ID, Start: opt.Start, Duration: opt.Duration, Time: opt.Time}, nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "t1", Duration: 90})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Start != 540 || captured.Duration != 90 {
			t.Errorf("expected start unchanged and duration 90, got %d/%d", captured.Start, captured.Duration)
		}
		if captured.Time != "9:00 AM-10:30 AM" {
			t.Errorf("expected rerendered display range, got %q", captured.Time)
		}
	})

	t.Run("Category Change Resolves New Label", func(t *testing.T) {
		resolved := ""
		catUC := &mockCategoryUC{
			resolveFunc: func(name string) (model.Category, bool, error) {
				resolved = name
				return model.Category{ID: "cat-work", Name: "Work"}, true, nil
			},
		}
		var captured repo.UpdateTaskOptions
		r := &mockRepo{
			getFunc: func(opt repo.GetOneTaskOptions) (model.Task, error) {
				return existingTask(), nil
			},
			updateFunc: func(opt repo.UpdateTaskOptions) (model.Task, error) {
				captured = opt
				return model.Task{ID: opt.ID}, nil
			},
		}
		uc := New(r, catUC, &mockLogger{})
		_, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: "t1", Category: "Work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved != "Work" {
			t.Errorf("expected category resolution for Work, got %q", resolved)
		}
		if captured.CategoryID != "cat-work" || captured.Category != "Work" {
			t.Errorf("expected reassigned category, got %+v", captured)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockCategoryUC{}, &mockLogger{})
		err := uc.Delete(ctx, sc, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Successful Delete", func(t *testing.T) {
		deleted := ""
		r := &mockRepo{
			getFunc: func(opt repo.GetOneTaskOptions) (model.Task, error) {
				return existingTask(), nil
			},
			deleteFunc: func(opt repo.DeleteTaskOptions) error {
				deleted = opt.ID
				return nil
			},
		}
		uc := New(r, &mockCategoryUC{}, &mockLogger{})
		if err := uc.Delete(ctx, sc, "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "t1" {
			t.Errorf("expected delete for t1, got %q", deleted)
		}
	})
}
