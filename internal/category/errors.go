package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateName    = errors.New("category name already exists")
	ErrEmptyName        = errors.New("category name is required")
	ErrDefaultProtected = errors.New("the default category cannot be deleted")
)
