package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	repo "atomic-scheduler/internal/category/repository"
	"atomic-scheduler/internal/model"
)

const categoryColumns = `id, user_id, name, color, bg_color, text_color, created_at, updated_at`

// uniqueViolation is the Postgres error code for unique-constraint violations.
const uniqueViolation = "23505"

// CreateCategory inserts a new Category row and returns the created entity.
// A unique-constraint violation on (user_id, name) maps to ErrDuplicate so
// callers can re-resolve instead of failing.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	query := fmt.Sprintf(`
		INSERT INTO categories (id, user_id, name, color, bg_color, text_color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, categoryColumns)

	id := uuid.NewString()

	row := r.db.QueryRowContext(ctx, query, id, opt.UserID, opt.Name, opt.Color, opt.BgColor, opt.TextColor)
	c, err := scanCategory(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Category{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneCategory retrieves a single Category by the provided filters (AND
// condition, Name case-insensitive). Returns zero-value Category
// (ID == "") when not found. Do NOT return error for not-found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM categories WHERE %s LIMIT 1", categoryColumns, mods)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Category{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCategories returns a paginated list of Categories and the total count.
func (r *implRepository) ListCategories(ctx context.Context, opt repo.ListCategoriesOptions) ([]model.Category, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM categories WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, opt.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListCategories"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM categories %s", categoryColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		c, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, 0, repo.ErrFailedToList
		}
		categories = append(categories, c)
	}
	return categories, total, nil
}

// UpdateCategory updates a Category by ID and returns the updated entity.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	query := fmt.Sprintf(`
		UPDATE categories
		SET name = $1, color = $2, bg_color = $3, text_color = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
		RETURNING %s`, categoryColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Color, opt.BgColor, opt.TextColor, time.Now(), opt.ID, opt.UserID,
	)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

// DeleteCategory removes a Category by ID.
func (r *implRepository) DeleteCategory(ctx context.Context, opt repo.DeleteCategoryOptions) error {
	const query = `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (model.Category, error) {
	var c model.Category
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Color, &c.BgColor, &c.TextColor, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
