package usecase

import (
	"context"
	"fmt"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/summary"
	repo "daily-task-agent/internal/task/repository"
)

// Prioritize orders the selected tasks by score.
func (uc *implUseCase) Prioritize(ctx context.Context, input planning.PrioritizeInput) (planning.PrioritizeOutput, error) {
	opt := repo.ListTasksOptions{}
	switch input.Status {
	case "":
		opt.Status = model.StatusTodo
	case planning.StatusAll:
	case model.StatusTodo, model.StatusDone:
		opt.Status = input.Status
	default:
		return planning.PrioritizeOutput{}, planning.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prioritize ListTasks: %v", err)
		return planning.PrioritizeOutput{}, err
	}

	return planning.PrioritizeOutput{Tasks: uc.prioritizer.Prioritize(ctx, tasks)}, nil
}

// Schedule plans the pending tasks on the requested day.
func (uc *implUseCase) Schedule(ctx context.Context, input planning.ScheduleInput) (planning.ScheduleOutput, error) {
	day, err := uc.dateMath.Parse(input.Day, uc.now())
	if err != nil {
		return planning.ScheduleOutput{}, fmt.Errorf("%w: %w", planning.ErrInvalidDay, err)
	}

	prioritized, err := uc.Prioritize(ctx, planning.PrioritizeInput{Status: model.StatusTodo})
	if err != nil {
		return planning.ScheduleOutput{}, err
	}

	out := planning.ScheduleOutput{
		Schedule: uc.scheduler.CreateDailySchedule(ctx, day, prioritized.Tasks),
	}

	if input.Export {
		out.Export = uc.export(ctx, out.Schedule)
	}
	return out, nil
}

// Summary reports completed and pending tasks across the whole store.
func (uc *implUseCase) Summary(ctx context.Context) (summary.Summary, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary ListTasks: %v", err)
		return summary.Summary{}, err
	}
	return uc.summarizer.GenerateEndOfDaySummary(tasks), nil
}
