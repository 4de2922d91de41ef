package usecase

import (
	"context"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/task"
	repo "atomic-scheduler/internal/task/repository"
)

// List returns a paginated list of the user's Tasks, chronological within
// the day by default.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Date:     input.Date,
		Category: input.Category,
		Block:    input.Block,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
