package jsonfile

import (
	"time"

	"daily-task-agent/internal/task/repository"
	"daily-task-agent/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
	now  func() time.Time
}

var _ repository.TaskRepository = (*implRepository)(nil)

// New creates a TaskRepository persisting all tasks as one JSON array at path.
func New(path string, l log.Logger) *implRepository {
	return &implRepository{
		path: path,
		l:    l,
		now:  time.Now,
	}
}
