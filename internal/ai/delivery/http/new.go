package http

import (
	"atomic-scheduler/internal/ai"
	"atomic-scheduler/pkg/log"
)

// Handler is the public interface for the AI HTTP delivery layer.
type Handler interface {
	Onboarding(c interface{})
	Optimize(c interface{})
	Research(c interface{})
}

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the AI domain.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
