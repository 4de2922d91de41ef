package schedule

import "errors"

var (
	ErrEmptySchedule   = errors.New("schedule has no time slots")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidDate     = errors.New("target date must be YYYY-MM-DD")
)
