package postgre

import (
	"fmt"
	"strings"

	repo "atomic-scheduler/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func taskFilterConditions(opt repo.ListTasksOptions, idx *int) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", *idx))
		args = append(args, opt.UserID)
		(*idx)++
	}
	if opt.Date != "" {
		conditions = append(conditions, fmt.Sprintf("date = $%d", *idx))
		args = append(args, opt.Date)
		(*idx)++
	}
	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(category) = LOWER($%d)", *idx))
		args = append(args, opt.Category)
		(*idx)++
	}
	if opt.Block != "" {
		conditions = append(conditions, fmt.Sprintf("block = $%d", *idx))
		args = append(args, opt.Block)
		(*idx)++
	}

	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	idx := 1
	conditions, args := taskFilterConditions(opt, &idx)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	idx := 1

	conditions, args := taskFilterConditions(opt, &idx)
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting: chronological within the day by default
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "start_minutes ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
