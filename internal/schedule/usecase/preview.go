package usecase

import (
	"context"
	"fmt"
	"strings"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
	repo "atomic-scheduler/internal/task/repository"
)

// Preview runs the converter's resolution and conflict logic without
// persisting anything, so the UI can confirm before committing.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input schedule.ConvertInput) (schedule.PreviewOutput, error) {
	if err := validateTargetDate(input.TargetDate); err != nil {
		return schedule.PreviewOutput{}, err
	}
	if len(input.Schedule.TimeSlots) == 0 {
		return schedule.PreviewOutput{}, schedule.ErrEmptySchedule
	}

	existing, _, err := uc.taskRepo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID, Date: input.TargetDate})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Preview ListTasks: %v", err)
		return schedule.PreviewOutput{}, err
	}

	known, err := uc.loadCategoryNames(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Preview loadCategoryNames: %v", err)
		return schedule.PreviewOutput{}, err
	}

	var out schedule.PreviewOutput
	seenNew := map[string]bool{}

	for _, slot := range input.Schedule.TimeSlots {
		r, slotErr := placementOf(slot)
		if slotErr != "" {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%q: %s", slot.Activity, slotErr))
			continue
		}

		if schedule.HasConflict(r, existing, "") {
			out.Conflicts = append(out.Conflicts, fmt.Sprintf("%q (%s) overlaps an existing task", slot.Activity, r.Format()))
		}

		name := normalizeLabel(slot.Category)
		if _, ok := known[strings.ToLower(name)]; !ok && !seenNew[strings.ToLower(name)] {
			seenNew[strings.ToLower(name)] = true
			out.NewCategories = append(out.NewCategories, name)
		}
	}

	return out, nil
}
