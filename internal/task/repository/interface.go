package repository

import (
	"context"

	"daily-task-agent/internal/model"
)

// TaskRepository defines all data access methods for the Task entity.
// Implementations give no isolation between concurrent callers.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
}
