package usecase

import (
	"context"
	"errors"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/task"
	"daily-task-agent/internal/task/parser"
	"daily-task-agent/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct {
	warns  int
	errors int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warns++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warns++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    { m.errors++ }
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  { m.errors++ }
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository keeping tasks in memory
type mockRepo struct {
	tasks     []model.Task
	listErr   error
	createErr error
	created   []repository.CreateTaskOptions
	updates   []repository.UpdateTaskOptions
	nextID    int
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.nextID++
	t := model.Task{
		ID:              string(rune('a' + m.nextID - 1)),
		Title:           opt.Title,
		Description:     opt.Description,
		DueDate:         opt.DueDate,
		DurationMinutes: opt.DurationMinutes,
		Tags:            opt.Tags,
		PriorityHint:    opt.PriorityHint,
		Status:          opt.Status,
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []model.Task{}
	for _, t := range m.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Tag != "" && !t.HasTag(opt.Tag) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updates = append(m.updates, opt)
	for i, t := range m.tasks {
		if t.ID != id {
			continue
		}
		if opt.Status != nil {
			t.Status = *opt.Status
		}
		if opt.PriorityHint != nil {
			t.PriorityHint = *opt.PriorityHint
		}
		if opt.DurationMinutes != nil {
			t.DurationMinutes = *opt.DurationMinutes
		}
		m.tasks[i] = t
		return t, nil
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) (bool, error) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Mock parser returning a fixed candidate
type mockParser struct {
	pt  parser.ParsedTask
	err error
}

func (m *mockParser) Parse(ctx context.Context, text string) (parser.ParsedTask, error) {
	return m.pt, m.err
}

var errDisk = errors.New("disk full")
