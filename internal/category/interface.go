package category

import (
	"context"

	"atomic-scheduler/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Category CRUD
	Create(ctx context.Context, sc model.Scope, input CreateCategoryInput) (CreateCategoryOutput, error)
	List(ctx context.Context, sc model.Scope, input ListCategoriesInput) (ListCategoriesOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailCategoryOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateCategoryInput) (UpdateCategoryOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteCategoryOutput, error)

	// Resolve finds a category by case-insensitive name, creating it when
	// missing. A lost creation race resolves by re-lookup.
	Resolve(ctx context.Context, sc model.Scope, name string) (model.Category, bool, error)
}
