package usecase

import (
	"atomic-scheduler/pkg/log"
	"atomic-scheduler/pkg/perplexity"
)

// implUseCase is the private implementation of ai.UseCase.
type implUseCase struct {
	llm   perplexity.IPerplexity
	model string
	l     log.Logger
}

// New creates a new AI UseCase implementation. llm may be nil when no
// API key is configured; every operation then serves fallback content.
func New(llm perplexity.IPerplexity, model string, l log.Logger) *implUseCase {
	if model == "" {
		model = perplexity.DefaultModel
	}
	return &implUseCase{
		llm:   llm,
		model: model,
		l:     l,
	}
}
