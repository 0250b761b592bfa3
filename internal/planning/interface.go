package planning

import (
	"context"

	"daily-task-agent/internal/summary"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Prioritize scores and orders stored tasks.
	Prioritize(ctx context.Context, input PrioritizeInput) (PrioritizeOutput, error)

	// Schedule prioritizes pending tasks and lays them out on the requested day,
	// optionally exporting task slots to the calendar.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// Summary reports the end-of-day state of every stored task.
	Summary(ctx context.Context) (summary.Summary, error)
}
