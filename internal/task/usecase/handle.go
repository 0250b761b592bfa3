package usecase

import (
	"context"
	"errors"
	"strings"

	"daily-task-agent/internal/metrics"
	"daily-task-agent/internal/model"
	"daily-task-agent/internal/session"
	"daily-task-agent/internal/task"
	repo "daily-task-agent/internal/task/repository"
)

// Handle parses free text into a task, rejects duplicates by normalized title and saves it.
func (uc *implUseCase) Handle(ctx context.Context, input task.HandleInput) task.HandleOutput {
	uc.history.Add(session.RoleUser, input.Text)

	if strings.TrimSpace(input.Text) == "" {
		return uc.fail(ctx, metrics.ResultInvalid, task.ErrEmptyTitle)
	}

	parsed, err := uc.parser.Parse(ctx, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Handle Parse: %v", err)
		return uc.fail(ctx, metrics.ResultError, err)
	}

	opt, err := coerce(parsed)
	if err != nil {
		return uc.fail(ctx, metrics.ResultInvalid, err)
	}

	existing, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Handle ListTasks: %v", err)
		return uc.fail(ctx, metrics.ResultError, err)
	}
	key := model.NormalizeTitle(opt.Title)
	for _, t := range existing {
		if model.NormalizeTitle(t.Title) == key {
			return uc.fail(ctx, metrics.ResultDuplicate, task.ErrDuplicateTitle)
		}
	}

	saved, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) {
			return uc.fail(ctx, metrics.ResultInvalid, err)
		}
		uc.l.Errorf(ctx, "uc.Handle CreateTask: %v", err)
		return uc.fail(ctx, metrics.ResultError, err)
	}

	ack := "Saved task: " + saved.Title
	uc.history.Add(session.RoleAssistant, ack)
	uc.metrics.RecordIntake(metrics.ResultSaved)
	uc.l.Infof(ctx, "uc.Handle: saved task %s %q", saved.ID, saved.Title)

	return task.HandleOutput{
		Success: true,
		Task:    &saved,
		Message: ack,
	}
}

func (uc *implUseCase) fail(ctx context.Context, result string, err error) task.HandleOutput {
	uc.metrics.RecordIntake(result)
	if result != metrics.ResultError {
		uc.l.Infof(ctx, "uc.Handle: rejected: %v", err)
	}
	return task.HandleOutput{
		Success: false,
		Error:   err.Error(),
		Err:     err,
	}
}
