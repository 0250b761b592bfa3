package usecase

import (
	"context"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/session"
	"daily-task-agent/internal/task"
	repo "daily-task-agent/internal/task/repository"
)

// List returns the stored tasks matching the filters.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	if input.Status != "" && !model.IsValidStatus(input.Status) {
		return nil, task.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status: input.Status,
		Tag:    input.Tag,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Detail returns one task by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	return uc.repo.GetTask(ctx, id)
}

// Update applies a partial update after validating status and priority.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	opt := repo.UpdateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Tags:        input.Tags,
		Status:      input.Status,
	}

	if input.Status != nil && !model.IsValidStatus(*input.Status) {
		return model.Task{}, task.ErrInvalidStatus
	}
	if input.PriorityHint != nil {
		p := normalizePriority(*input.PriorityHint)
		if p != "" && !model.IsValidPriority(p) {
			return model.Task{}, task.ErrInvalidPriority
		}
		opt.PriorityHint = &p
	}
	if input.DurationMinutes != nil {
		d := *input.DurationMinutes
		if d < 0 {
			d = 0
		}
		if d > model.MaxDurationMinutes {
			return model.Task{}, task.ErrInvalidDuration
		}
		opt.DurationMinutes = &d
	}

	updated, err := uc.repo.UpdateTask(ctx, input.ID, opt)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Update UpdateTask %s: %v", input.ID, err)
		return model.Task{}, err
	}
	return updated, nil
}

// Complete marks a task done.
func (uc *implUseCase) Complete(ctx context.Context, id string) (model.Task, error) {
	done := model.StatusDone
	return uc.Update(ctx, task.UpdateInput{ID: id, Status: &done})
}

// Delete removes a task; an unknown id is task.ErrTaskNotFound.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask %s: %v", id, err)
		return err
	}
	if !ok {
		return task.ErrTaskNotFound
	}
	return nil
}

// Recent returns the latest n intake messages, oldest first.
func (uc *implUseCase) Recent(n int) []session.Message {
	return uc.history.Recent(n)
}
