package http

import (
	"daily-task-agent/internal/planning"
	"daily-task-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc planning.UseCase
}

// New creates a new HTTP handler for the planning domain.
func New(l log.Logger, uc planning.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
