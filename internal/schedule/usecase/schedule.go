package usecase

import (
	"context"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
	repo "atomic-scheduler/internal/task/repository"
	"atomic-scheduler/pkg/timeutil"
)

// Validate checks a schedule for structural problems and overlaps.
func (uc *implUseCase) Validate(ctx context.Context, input model.Schedule) schedule.ValidateOutput {
	errs := schedule.ValidateSchedule(input)
	return schedule.ValidateOutput{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Optimize shifts overlapping slots forward so the schedule is
// self-consistent before conversion.
func (uc *implUseCase) Optimize(ctx context.Context, input model.Schedule) schedule.OptimizeOutput {
	buffer := uc.schedCfg.BufferMinutes
	if buffer <= 0 {
		buffer = schedule.DefaultBufferMinutes
	}
	adjusted, shifted := schedule.OptimizeSchedule(input, buffer)
	return schedule.OptimizeOutput{
		Schedule: adjusted,
		Adjusted: shifted,
	}
}

// Suggest proposes alternative non-conflicting slots for a duration
// within a preferred block on a given day.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input schedule.SuggestInput) (schedule.SuggestOutput, error) {
	if input.Duration <= 0 {
		return schedule.SuggestOutput{}, schedule.ErrInvalidDuration
	}
	if err := validateTargetDate(input.Date); err != nil {
		return schedule.SuggestOutput{}, err
	}

	existing, _, err := uc.taskRepo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID, Date: input.Date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggest ListTasks: %v", err)
		return schedule.SuggestOutput{}, err
	}

	step := uc.schedCfg.SuggestionStepMin
	count := uc.schedCfg.SuggestionCount
	ranges := schedule.SuggestSlots(input.Duration, timeutil.Block(input.Block), existing, step, count)

	candidates := make([]schedule.SlotCandidate, len(ranges))
	for i, r := range ranges {
		candidates[i] = schedule.SlotCandidate{
			Range: r,
			Time:  r.Format(),
			Block: timeutil.BlockOf(r.Start),
		}
	}
	return schedule.SuggestOutput{Candidates: candidates}, nil
}
