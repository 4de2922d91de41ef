package http

import (
	"errors"

	"atomic-scheduler/internal/task"
	pkgErrors "atomic-scheduler/pkg/errors"
)

var (
	errMissingID   = errors.New("id is required")
	errMissingTime = errors.New("either time or duration is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// ConflictError is handled before this point; it carries a payload.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrEmptyName):
		return pkgErrors.NewHTTPError(400, "task name is required")
	case errors.Is(err, task.ErrInvalidTimeRange):
		return pkgErrors.NewHTTPError(400, "invalid time range")
	case errors.Is(err, task.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(400, "duration must be positive")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
