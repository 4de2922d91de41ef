package usecase

import (
	"context"

	"atomic-scheduler/internal/category"
	"atomic-scheduler/internal/model"
	repo "atomic-scheduler/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock task repository for testing
type mockTaskRepo struct {
	listFunc   func(opt repo.ListTasksOptions) ([]model.Task, int, error)
	createFunc func(opt repo.CreateTaskOptions) (model.Task, error)
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Task{
		ID:       "generated",
		UserID:   opt.UserID,
		Name:     opt.Name,
		Time:     opt.Time,
		Start:    opt.Start,
		Duration: opt.Duration,
		Category: opt.Category,
		Block:    opt.Block,
		Date:     opt.Date,
	}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	return nil
}

func (m *mockTaskRepo) ReassignCategory(ctx context.Context, opt repo.ReassignCategoryOptions) (int, error) {
	return 0, nil
}

// Mock category use case for testing
type mockCategoryUC struct {
	listFunc    func(input category.ListCategoriesInput) (category.ListCategoriesOutput, error)
	resolveFunc func(name string) (model.Category, bool, error)
}

func (m *mockCategoryUC) Create(ctx context.Context, sc model.Scope, input category.CreateCategoryInput) (category.CreateCategoryOutput, error) {
	return category.CreateCategoryOutput{}, nil
}

func (m *mockCategoryUC) List(ctx context.Context, sc model.Scope, input category.ListCategoriesInput) (category.ListCategoriesOutput, error) {
	if m.listFunc != nil {
		return m.listFunc(input)
	}
	return category.ListCategoriesOutput{}, nil
}

func (m *mockCategoryUC) Detail(ctx context.Context, sc model.Scope, id string) (category.DetailCategoryOutput, error) {
	return category.DetailCategoryOutput{}, nil
}

func (m *mockCategoryUC) Update(ctx context.Context, sc model.Scope, input category.UpdateCategoryInput) (category.UpdateCategoryOutput, error) {
	return category.UpdateCategoryOutput{}, nil
}

func (m *mockCategoryUC) Delete(ctx context.Context, sc model.Scope, id string) (category.DeleteCategoryOutput, error) {
	return category.DeleteCategoryOutput{}, nil
}

func (m *mockCategoryUC) Resolve(ctx context.Context, sc model.Scope, name string) (model.Category, bool, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(name)
	}
	return model.Category{ID: "cat-" + name, Name: name}, false, nil
}
