package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrDuplicate reports a unique-constraint violation on insert.
	// Callers racing on category creation interpret this as "already
	// exists" and resolve by lookup.
	ErrDuplicate = errors.New("record already exists")
)
