package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"atomic-scheduler/internal/model"
	repo "atomic-scheduler/internal/task/repository"
)

const taskColumns = `id, user_id, name, time, start_minutes, duration_minutes, category_id, category, block, date, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, name, time, start_minutes, duration_minutes, category_id, category, block, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s`, taskColumns)

	id := uuid.NewString()

	row := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.Name, opt.Time, opt.Start, opt.Duration,
		opt.CategoryID, opt.Category, opt.Block, opt.Date,
	)
	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found. Do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET name = $1, time = $2, start_minutes = $3, duration_minutes = $4,
		    category_id = $5, category = $6, block = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
		RETURNING %s`, taskColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Time, opt.Start, opt.Duration,
		opt.CategoryID, opt.Category, opt.Block, time.Now(),
		opt.ID, opt.UserID,
	)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ReassignCategory moves every task of one category label to another.
func (r *implRepository) ReassignCategory(ctx context.Context, opt repo.ReassignCategoryOptions) (int, error) {
	const query = `
		UPDATE tasks
		SET category_id = $1, category = $2, updated_at = NOW()
		WHERE user_id = $3 AND LOWER(category) = LOWER($4)`

	res, err := r.db.ExecContext(ctx, query, opt.ToCategoryID, opt.ToCategory, opt.UserID, opt.FromCategory)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReassignCategory"), err)
		return 0, repo.ErrFailedToUpdate
	}
	moved, _ := res.RowsAffected()
	return int(moved), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Time, &t.Start, &t.Duration,
		&t.CategoryID, &t.Category, &t.Block, &t.Date, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
