package repository

// CreateCategoryOptions holds parameters for inserting a new Category.
type CreateCategoryOptions struct {
	UserID    string
	Name      string
	Color     string
	BgColor   string
	TextColor string
}

// GetOneCategoryOptions holds filter parameters for fetching a single
// Category. All non-empty fields are applied as AND conditions; Name
// matches case-insensitively.
type GetOneCategoryOptions struct {
	ID     string
	UserID string
	Name   string
}

// ListCategoriesOptions holds pagination parameters for listing Categories.
type ListCategoriesOptions struct {
	UserID  string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateCategoryOptions holds parameters for updating an existing Category.
type UpdateCategoryOptions struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	BgColor   string
	TextColor string
}

// DeleteCategoryOptions identifies the category to remove.
type DeleteCategoryOptions struct {
	ID     string
	UserID string
}
