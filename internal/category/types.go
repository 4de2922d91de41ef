package category

import "atomic-scheduler/internal/model"

// --- UseCase Inputs ---

type CreateCategoryInput struct {
	Name      string
	Color     string
	BgColor   string
	TextColor string
}

type ListCategoriesInput struct {
	Limit  int
	Offset int
}

type UpdateCategoryInput struct {
	ID        string
	Name      string
	Color     string
	BgColor   string
	TextColor string
}

// --- UseCase Outputs ---

type CreateCategoryOutput struct {
	Category model.Category
}

type ListCategoriesOutput struct {
	Categories []model.Category
	Total      int
	Limit      int
	Offset     int
}

type DetailCategoryOutput struct {
	Category model.Category
}

type UpdateCategoryOutput struct {
	Category model.Category
}

// DeleteCategoryOutput reports the cleanup performed alongside the delete:
// tasks of the removed category are reassigned to the default label.
type DeleteCategoryOutput struct {
	ReassignedTasks int
}
