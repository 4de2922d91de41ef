package http

import (
	"errors"

	"atomic-scheduler/internal/schedule"
	pkgErrors "atomic-scheduler/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrEmptySchedule):
		return pkgErrors.NewHTTPError(400, "schedule has no time slots")
	case errors.Is(err, schedule.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(400, "duration must be positive")
	case errors.Is(err, schedule.ErrInvalidDate):
		return pkgErrors.NewHTTPError(400, "target date must be YYYY-MM-DD")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
