package http

import (
	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/schedule"
	"atomic-scheduler/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Generate(c interface{})
	Validate(c interface{})
	Optimize(c interface{})
	Preview(c interface{})
	Convert(c interface{})
	Suggest(c interface{})
}

type handler struct {
	l    log.Logger
	uc   schedule.UseCase
	aiUC ai.UseCase
}

// New creates a new HTTP handler for the schedule domain. The generate
// route delegates to the AI use case.
func New(l log.Logger, uc schedule.UseCase, aiUC ai.UseCase) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		aiUC: aiUC,
	}
}
