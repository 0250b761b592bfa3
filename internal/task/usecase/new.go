package usecase

import (
	"daily-task-agent/internal/metrics"
	"daily-task-agent/internal/session"
	"daily-task-agent/internal/task"
	"daily-task-agent/internal/task/parser"
	"daily-task-agent/internal/task/repository"
	"daily-task-agent/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l       log.Logger
	repo    repository.TaskRepository
	parser  parser.Parser
	history *session.Log
	metrics *metrics.Metrics
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
// history records intake traffic; m may be nil.
func New(
	l log.Logger,
	repo repository.TaskRepository,
	p parser.Parser,
	history *session.Log,
	m *metrics.Metrics,
) *implUseCase {
	if history == nil {
		history = session.New(session.DefaultCapacity)
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		parser:  p,
		history: history,
		metrics: m,
	}
}
