package usecase

import (
	"context"

	"atomic-scheduler/config"
	"atomic-scheduler/internal/category"
	taskRepo "atomic-scheduler/internal/task/repository"
	"atomic-scheduler/pkg/gcalendar"
	"atomic-scheduler/pkg/log"
)

// CalendarExporter pushes materialized tasks to an external calendar.
// Satisfied by *gcalendar.Client; nil disables export.
type CalendarExporter interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	taskRepo   taskRepo.Repository
	categoryUC category.UseCase
	calendar   CalendarExporter
	calCfg     config.GoogleCalendarConfig
	schedCfg   config.ScheduleConfig
	l          log.Logger
}

// New creates a new schedule UseCase implementation. calendar may be nil
// when export is not configured.
func New(
	repo taskRepo.Repository,
	categoryUC category.UseCase,
	calendar CalendarExporter,
	calCfg config.GoogleCalendarConfig,
	schedCfg config.ScheduleConfig,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		taskRepo:   repo,
		categoryUC: categoryUC,
		calendar:   calendar,
		calCfg:     calCfg,
		schedCfg:   schedCfg,
		l:          l,
	}
}
