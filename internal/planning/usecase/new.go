package usecase

import (
	"context"
	"time"

	"daily-task-agent/internal/metrics"
	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/prioritizer"
	"daily-task-agent/internal/scheduler"
	"daily-task-agent/internal/summary"
	"daily-task-agent/internal/task/repository"
	"daily-task-agent/pkg/datemath"
	"daily-task-agent/pkg/gcalendar"
	"daily-task-agent/pkg/log"
)

// Calendar is the part of the Google Calendar client the export needs.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// implUseCase is the private implementation of planning.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.TaskRepository
	prioritizer *prioritizer.Prioritizer
	scheduler   *scheduler.Scheduler
	summarizer  *summary.Summarizer
	dateMath    *datemath.Parser
	calendar    Calendar
	calendarID  string
	metrics     *metrics.Metrics
	now         func() time.Time
}

var _ planning.UseCase = (*implUseCase)(nil)

// Config bundles the collaborators of the planning use case.
// Calendar and Metrics are optional.
type Config struct {
	Repo        repository.TaskRepository
	Prioritizer *prioritizer.Prioritizer
	Scheduler   *scheduler.Scheduler
	Summarizer  *summary.Summarizer
	DateMath    *datemath.Parser
	Calendar    Calendar
	CalendarID  string
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

// New creates a new planning UseCase implementation.
func New(l log.Logger, cfg Config) *implUseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:           l,
		repo:        cfg.Repo,
		prioritizer: cfg.Prioritizer,
		scheduler:   cfg.Scheduler,
		summarizer:  cfg.Summarizer,
		dateMath:    cfg.DateMath,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
		metrics:     cfg.Metrics,
		now:         now,
	}
}
