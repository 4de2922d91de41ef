package http

import (
	"errors"

	"atomic-scheduler/internal/category"
	pkgErrors "atomic-scheduler/pkg/errors"
)

var errMissingID = errors.New("id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return pkgErrors.NewHTTPError(404, "category not found")
	case errors.Is(err, category.ErrDuplicateName):
		return pkgErrors.NewHTTPError(409, "category name already exists")
	case errors.Is(err, category.ErrEmptyName):
		return pkgErrors.NewHTTPError(400, "category name is required")
	case errors.Is(err, category.ErrDefaultProtected):
		return pkgErrors.NewHTTPError(400, "the default category cannot be deleted")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
