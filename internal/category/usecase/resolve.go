package usecase

import (
	"context"
	"hash/fnv"
	"strings"

	"atomic-scheduler/internal/category"
	repo "atomic-scheduler/internal/category/repository"
	"atomic-scheduler/internal/model"
)

// Resolve finds a category by case-insensitive name, creating it when
// missing. The second return reports whether a new category was created.
// Losing a concurrent creation race (unique-constraint violation) is
// resolved by looking the winner up again, not by falling back to the
// default category.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, name string) (model.Category, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultCategoryName
	}

	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resolve GetOneCategory: %v", err)
		return model.Category{}, false, err
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	palette := defaultPalette(name)
	created, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		UserID:    sc.UserID,
		Name:      name,
		Color:     palette.Color,
		BgColor:   palette.BgColor,
		TextColor: palette.TextColor,
	})
	if err == repo.ErrDuplicate {
		// Another request created it between our lookup and insert.
		winner, lookupErr := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{UserID: sc.UserID, Name: name})
		if lookupErr != nil {
			uc.l.Errorf(ctx, "uc.Resolve re-lookup after duplicate: %v", lookupErr)
			return model.Category{}, false, lookupErr
		}
		if winner.ID == "" {
			return model.Category{}, false, category.ErrCategoryNotFound
		}
		return winner, false, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resolve CreateCategory: %v", err)
		return model.Category{}, false, err
	}

	return created, true, nil
}

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// palette is a display color triple for implicitly created categories.
type palette struct {
	Color     string
	BgColor   string
	TextColor string
}

var palettes = []palette{
	{Color: "#3B82F6", BgColor: "#DBEAFE", TextColor: "#1E3A8A"}, // blue
	{Color: "#10B981", BgColor: "#D1FAE5", TextColor: "#064E3B"}, // green
	{Color: "#F59E0B", BgColor: "#FEF3C7", TextColor: "#78350F"}, // amber
	{Color: "#8B5CF6", BgColor: "#EDE9FE", TextColor: "#4C1D95"}, // violet
	{Color: "#EF4444", BgColor: "#FEE2E2", TextColor: "#7F1D1D"}, // red
	{Color: "#14B8A6", BgColor: "#CCFBF1", TextColor: "#134E4A"}, // teal
}

// defaultPalette deterministically picks a palette for a category name so
// implicit creation is stable across requests.
func defaultPalette(name string) palette {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	return palettes[int(h.Sum32())%len(palettes)]
}
