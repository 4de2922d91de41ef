package task

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyName        = errors.New("task name is required")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidDuration  = errors.New("duration must be positive")
)

// ConflictError reports an overlap with an existing task, carrying
// alternative non-conflicting slots for the same duration.
type ConflictError struct {
	Suggestions []string // formatted ranges, earliest first
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time range conflicts with an existing task (%d alternatives available)", len(e.Suggestions))
}
