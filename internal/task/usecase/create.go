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

// Create persists a new Task after validating its time range and checking
// it against the rest of the day. The range is parsed once here; Start and
// Duration are stored alongside the display string so they cannot drift.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyName
	}

	r, err := uc.resolveRange(input.Time, input.Start, input.Duration)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	existing, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID, Date: input.Date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ListTasks: %v", err)
		return task.CreateTaskOutput{}, err
	}

	if schedule.HasConflict(r, existing, "") {
		return task.CreateTaskOutput{}, uc.conflictError(r.Duration(), existing)
	}

	cat, _, err := uc.categoryUC.Resolve(ctx, sc, input.Category)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Resolve category: %v", err)
		return task.CreateTaskOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:     sc.UserID,
		Name:       strings.TrimSpace(input.Name),
		Time:       r.Format(),
		Start:      r.Start,
		Duration:   r.Duration(),
		CategoryID: cat.ID,
		Category:   cat.Name,
		Block:      string(timeutil.BlockOf(r.Start)),
		Date:       input.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}

// resolveRange normalizes the two ways a caller can express a time range:
// a display string ("9:00-10:00 AM"), or Start+Duration minutes.
func (uc *implUseCase) resolveRange(timeStr string, start, duration int) (timeutil.TimeRange, error) {
	if strings.TrimSpace(timeStr) != "" {
		r, err := timeutil.ParseRange(timeStr)
		if err != nil {
			return timeutil.TimeRange{}, task.ErrInvalidTimeRange
		}
		if r.Duration() <= 0 {
			return timeutil.TimeRange{}, task.ErrInvalidDuration
		}
		return r, nil
	}

	if duration <= 0 {
		return timeutil.TimeRange{}, task.ErrInvalidDuration
	}
	if start < 0 || start >= timeutil.MinutesPerDay {
		return timeutil.TimeRange{}, task.ErrInvalidTimeRange
	}
	return timeutil.TimeRange{Start: start, End: start + duration}, nil
}

// conflictError builds the alternatives payload for a rejected placement.
func (uc *implUseCase) conflictError(duration int, existing []model.Task) error {
	slots := schedule.SuggestSlots(duration, "", existing, schedule.DefaultSuggestionStep, schedule.DefaultSuggestionCount)
	suggestions := make([]string, len(slots))
	for i, s := range slots {
		suggestions[i] = s.Format()
	}
	return &task.ConflictError{Suggestions: suggestions}
}
