package usecase

import (
	"context"
	"strings"

	"atomic-scheduler/internal/category"
	repo "atomic-scheduler/internal/category/repository"
	"atomic-scheduler/internal/model"
	taskRepo "atomic-scheduler/internal/task/repository"
)

// Create creates a new Category after checking for name uniqueness
// (case-insensitive).
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input category.CreateCategoryInput) (category.CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return category.CreateCategoryOutput{}, category.ErrEmptyName
	}

	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
		return category.CreateCategoryOutput{}, err
	}
	if existing.ID != "" {
		return category.CreateCategoryOutput{}, category.ErrDuplicateName
	}

	c, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		UserID:    sc.UserID,
		Name:      name,
		Color:     uc.coalesce(input.Color, defaultPalette(name).Color),
		BgColor:   uc.coalesce(input.BgColor, defaultPalette(name).BgColor),
		TextColor: uc.coalesce(input.TextColor, defaultPalette(name).TextColor),
	})
	if err == repo.ErrDuplicate {
		return category.CreateCategoryOutput{}, category.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		return category.CreateCategoryOutput{}, err
	}

	return category.CreateCategoryOutput{Category: c}, nil
}

// List returns a paginated list of the user's Categories.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input category.ListCategoriesInput) (category.ListCategoriesOutput, error) {
	categories, total, err := uc.repo.ListCategories(ctx, repo.ListCategoriesOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListCategoriesOutput{}, err
	}

	return category.ListCategoriesOutput{
		Categories: categories,
		Total:      total,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}, nil
}

// Detail retrieves a single Category by ID. Returns ErrCategoryNotFound
// when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (category.DetailCategoryOutput, error) {
	c, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCategory: %v", err)
		return category.DetailCategoryOutput{}, err
	}
	if c.ID == "" {
		return category.DetailCategoryOutput{}, category.ErrCategoryNotFound
	}
	return category.DetailCategoryOutput{Category: c}, nil
}

// Update modifies an existing Category. Returns ErrCategoryNotFound when
// not found, ErrDuplicateName when renaming onto an existing name.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input category.UpdateCategoryInput) (category.UpdateCategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
		return category.UpdateCategoryOutput{}, err
	}
	if existing.ID == "" {
		return category.UpdateCategoryOutput{}, category.ErrCategoryNotFound
	}

	name := uc.coalesce(strings.TrimSpace(input.Name), existing.Name)
	if !strings.EqualFold(name, existing.Name) {
		dup, dupErr := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, Name: name})
		if dupErr != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCategory dup check: %v", dupErr)
			return category.UpdateCategoryOutput{}, dupErr
		}
		if dup.ID != "" {
			return category.UpdateCategoryOutput{}, category.ErrDuplicateName
		}
	}

	c, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:        input.ID,
		UserID:    sc.UserID,
		Name:      name,
		Color:     uc.coalesce(input.Color, existing.Color),
		BgColor:   uc.coalesce(input.BgColor, existing.BgColor),
		TextColor: uc.coalesce(input.TextColor, existing.TextColor),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return category.UpdateCategoryOutput{}, err
	}

	// Keep the denormalized label on tasks in sync after a rename.
	if !strings.EqualFold(existing.Name, c.Name) {
		if _, reErr := uc.taskRepo.ReassignCategory(ctx, taskRepo.ReassignCategoryOptions{
			UserID:       sc.UserID,
			FromCategory: existing.Name,
			ToCategoryID: c.ID,
			ToCategory:   c.Name,
		}); reErr != nil {
			uc.l.Errorf(ctx, "uc.Update ReassignCategory: %v", reErr)
			return category.UpdateCategoryOutput{}, reErr
		}
	}

	return category.UpdateCategoryOutput{Category: c}, nil
}

// Delete removes a Category by ID and reassigns its tasks to the default
// "Personal" label. The default category itself cannot be deleted.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (category.DeleteCategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneCategory: %v", err)
		return category.DeleteCategoryOutput{}, err
	}
	if existing.ID == "" {
		return category.DeleteCategoryOutput{}, category.ErrCategoryNotFound
	}
	if strings.EqualFold(existing.Name, model.DefaultCategoryName) {
		return category.DeleteCategoryOutput{}, category.ErrDefaultProtected
	}

	// Resolve the default category so orphaned tasks keep a valid id.
	fallback, _, err := uc.Resolve(ctx, sc, model.DefaultCategoryName)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete Resolve default: %v", err)
		return category.DeleteCategoryOutput{}, err
	}

	moved, err := uc.taskRepo.ReassignCategory(ctx, taskRepo.ReassignCategoryOptions{
		UserID:       sc.UserID,
		FromCategory: existing.Name,
		ToCategoryID: fallback.ID,
		ToCategory:   fallback.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete ReassignCategory: %v", err)
		return category.DeleteCategoryOutput{}, err
	}

	if err := uc.repo.DeleteCategory(ctx, repo.DeleteCategoryOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCategory: %v", err)
		return category.DeleteCategoryOutput{}, err
	}

	return category.DeleteCategoryOutput{ReassignedTasks: moved}, nil
}
