package schedule

import (
	"context"

	"atomic-scheduler/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Convert materializes an AI schedule into persisted tasks.
	Convert(ctx context.Context, sc model.Scope, input ConvertInput) (ConvertOutput, error)

	// Preview runs the same resolution and conflict logic as Convert
	// without persisting anything.
	Preview(ctx context.Context, sc model.Scope, input ConvertInput) (PreviewOutput, error)

	// Validate checks a schedule for structural problems and overlaps.
	Validate(ctx context.Context, input model.Schedule) ValidateOutput

	// Optimize shifts overlapping slots forward so the schedule is
	// self-consistent.
	Optimize(ctx context.Context, input model.Schedule) OptimizeOutput

	// Suggest proposes alternative non-conflicting slots for a duration
	// within a preferred block on a given day.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)
}
