package schedule

import (
	"atomic-scheduler/internal/model"
	"atomic-scheduler/pkg/timeutil"
)

// --- UseCase Inputs ---

type ConvertInput struct {
	Schedule                model.Schedule
	TargetDate              string // YYYY-MM-DD
	PreserveExistingTasks   bool
	CreateMissingCategories bool
}

type SuggestInput struct {
	Duration int
	Block    string // empty scans every block
	Date     string
}

// --- UseCase Outputs ---

// SkippedSlot records a slot that was not materialized and why.
type SkippedSlot struct {
	Slot   model.TimeSlot
	Reason string
}

// SlotError records a per-slot failure during conversion. Conversion
// continues past these (partial-success semantics).
type SlotError struct {
	Activity string
	Message  string
}

type ConvertOutput struct {
	Created           []model.Task
	Skipped           []SkippedSlot
	CreatedCategories []string
	Errors            []SlotError
}

type PreviewOutput struct {
	Conflicts     []string
	Warnings      []string
	NewCategories []string
}

type ValidateOutput struct {
	Valid  bool
	Errors []string
}

type OptimizeOutput struct {
	Schedule model.Schedule
	Adjusted int // number of slots whose start was shifted
}

// SlotCandidate is one suggested alternative placement.
type SlotCandidate struct {
	Range timeutil.TimeRange
	Time  string // formatted display range
	Block timeutil.Block
}

type SuggestOutput struct {
	Candidates []SlotCandidate
}
