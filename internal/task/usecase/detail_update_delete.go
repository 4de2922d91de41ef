package usecase

import (
	"context"
	"strings"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
	"atomic-scheduler/internal/task"
	repo "atomic-scheduler/internal/task/repository"
	"atomic-scheduler/pkg/timeutil"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update modifies an existing Task. A changed time range is re-checked
// against the rest of the day, excluding the task itself.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	// Recompute the range from whichever of time/duration changed.
	r := timeutil.TimeRange{Start: existing.Start, End: existing.Start + existing.Duration}
	if strings.TrimSpace(input.Time) != "" {
		r, err = timeutil.ParseRange(input.Time)
		if err != nil {
			return task.UpdateTaskOutput{}, task.ErrInvalidTimeRange
		}
	} else if input.Duration > 0 {
		r.End = r.Start + input.Duration
	}
	if r.Duration() <= 0 {
		return task.UpdateTaskOutput{}, task.ErrInvalidDuration
	}

	if r.Start != existing.Start || r.Duration() != existing.Duration {
		day, _, listErr := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID, Date: existing.Date})
		if listErr != nil {
			uc.l.Errorf(ctx, "uc.Update ListTasks: %v", listErr)
			return task.UpdateTaskOutput{}, listErr
		}
		if schedule.HasConflict(r, day, existing.ID) {
			return task.UpdateTaskOutput{}, uc.conflictError(r.Duration(), day)
		}
	}

	categoryID := existing.CategoryID
	categoryName := existing.Category
	if input.Category != "" && !strings.EqualFold(input.Category, existing.Category) {
		cat, _, resErr := uc.categoryUC.Resolve(ctx, sc, input.Category)
		if resErr != nil {
			uc.l.Errorf(ctx, "uc.Update Resolve category: %v", resErr)
			return task.UpdateTaskOutput{}, resErr
		}
		categoryID = cat.ID
		categoryName = cat.Name
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:         input.ID,
		UserID:     sc.UserID,
		Name:       uc.coalesce(strings.TrimSpace(input.Name), existing.Name),
		Time:       r.Format(),
		Start:      r.Start,
		Duration:   r.Duration(),
		CategoryID: categoryID,
		Category:   categoryName,
		Block:      string(timeutil.BlockOf(r.Start)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
