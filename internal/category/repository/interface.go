package repository

import (
	"context"

	"atomic-scheduler/internal/model"
)

// Repository is the composed interface for the category domain data store.
type Repository interface {
	CategoryRepository
}

// CategoryRepository defines all data access methods for the Category entity.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (model.Category, error)
	ListCategories(ctx context.Context, opt ListCategoriesOptions) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (model.Category, error)
	DeleteCategory(ctx context.Context, opt DeleteCategoryOptions) error
}
