package http

import (
	"time"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Name     string `json:"name"     binding:"required,min=1,max=255"`
	Time     string `json:"time"     binding:"max=64"`
	Start    int    `json:"start"    binding:"omitempty,min=0,max=1439"`
	Duration int    `json:"duration" binding:"omitempty,min=1,max=480"`
	Category string `json:"category" binding:"max=100"`
	Date     string `json:"date"     binding:"required,datetime=2006-01-02"`
}

func (r createReq) validate() error {
	if r.Time == "" && r.Duration <= 0 {
		return errMissingTime
	}
	return nil
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Name:     r.Name,
		Time:     r.Time,
		Start:    r.Start,
		Duration: r.Duration,
		Category: r.Category,
		Date:     r.Date,
	}
}

// ---

type listReq struct {
	Date     string `form:"date"`
	Category string `form:"category"`
	Block    string `form:"block" binding:"omitempty,oneof=morning afternoon evening"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListTasksInput{
		Date:     r.Date,
		Category: r.Category,
		Block:    r.Block,
		Limit:    limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID       string `json:"-"` // populated from URI param
	Name     string `json:"name"     binding:"omitempty,min=1,max=255"`
	Time     string `json:"time"     binding:"max=64"`
	Duration int    `json:"duration" binding:"omitempty,min=1,max=480"`
	Category string `json:"category" binding:"max=100"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:       r.ID,
		Name:     r.Name,
		Time:     r.Time,
		Duration: r.Duration,
		Category: r.Category,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Time      string    `json:"time"`
	Start     int       `json:"start"`
	Duration  int       `json:"duration"`
	Category  string    `json:"category"`
	Block     string    `json:"block"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Name:      t.Name,
		Time:      t.Time,
		Start:     t.Start,
		Duration:  t.Duration,
		Category:  t.Category,
		Block:     t.Block,
		Date:      t.Date,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type conflictResp struct {
	Suggestions []string `json:"suggestions"`
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
