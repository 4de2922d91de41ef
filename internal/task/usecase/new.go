package usecase

import (
	"atomic-scheduler/internal/category"
	"atomic-scheduler/internal/task/repository"
	"atomic-scheduler/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo       repository.Repository
	categoryUC category.UseCase
	l          log.Logger
}

// New creates a new task UseCase implementation. Category resolution is
// delegated so labels on incoming tasks create categories on demand.
func New(repo repository.Repository, categoryUC category.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		categoryUC: categoryUC,
		l:          l,
	}
}
