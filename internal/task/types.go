package task

import "atomic-scheduler/internal/model"

// --- UseCase Inputs ---

// CreateTaskInput describes a task to create. Time may be either a full
// range string ("9:00-10:00 AM") or empty, in which case Start+Duration
// define the range.
type CreateTaskInput struct {
	Name     string
	Time     string
	Start    int
	Duration int
	Category string
	Date     string
}

type ListTasksInput struct {
	Date     string
	Category string
	Block    string
	Limit    int
	Offset   int
}

type UpdateTaskInput struct {
	ID       string
	Name     string
	Time     string
	Duration int
	Category string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
