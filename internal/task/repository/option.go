package repository

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID     string
	Name       string
	Time       string
	Start      int
	Duration   int
	CategoryID string
	Category   string
	Block      string
	Date       string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID   string
	Date     string
	Category string
	Block    string
	Limit    int
	Offset   int
	OrderBy  string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
type UpdateTaskOptions struct {
	ID         string
	UserID     string
	Name       string
	Time       string
	Start      int
	Duration   int
	CategoryID string
	Category   string
	Block      string
}

// DeleteTaskOptions identifies the task to remove.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}

// ReassignCategoryOptions moves tasks between category labels.
type ReassignCategoryOptions struct {
	UserID       string
	FromCategory string
	ToCategoryID string
	ToCategory   string
}
