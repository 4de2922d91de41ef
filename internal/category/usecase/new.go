package usecase

import (
	"atomic-scheduler/internal/category/repository"
	taskRepo "atomic-scheduler/internal/task/repository"
	"atomic-scheduler/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo     repository.Repository
	taskRepo taskRepo.Repository
	l        log.Logger
}

// New creates a new category UseCase implementation. The task repository
// is needed for the delete path, which reassigns orphaned tasks to the
// default category.
func New(repo repository.Repository, taskRepo taskRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		taskRepo: taskRepo,
		l:        l,
	}
}
