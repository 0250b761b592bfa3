package jsonfile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/task"
	"daily-task-agent/internal/task/repository"
)

// CreateTask appends a new task and rewrites the store.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	tasks, err := r.load(ctx)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:              opt.ID,
		Title:           title,
		Description:     opt.Description,
		DueDate:         opt.DueDate,
		DurationMinutes: opt.DurationMinutes,
		Tags:            normalizeTags(opt.Tags),
		PriorityHint:    opt.PriorityHint,
		Status:          opt.Status,
		CreatedAt:       r.now().UTC().Format(time.RFC3339),
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = model.StatusTodo
	}

	tasks = append(tasks, t)
	if err := r.save(tasks); err != nil {
		r.l.Errorf(ctx, "jsonfile.CreateTask save: %v", err)
		return model.Task{}, err
	}

	return t, nil
}

// GetTask returns the task with the given id.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	tasks, err := r.load(ctx)
	if err != nil {
		return model.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

// ListTasks returns the tasks matching every non-empty filter, in stored order.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
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

// UpdateTask applies the non-nil fields of opt. ID and CreatedAt never change.
func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	tasks, err := r.load(ctx)
	if err != nil {
		return model.Task{}, err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	t := tasks[idx]
	if opt.Title != nil {
		title := strings.TrimSpace(*opt.Title)
		if title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		t.Title = title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.DueDate != nil {
		t.DueDate = *opt.DueDate
	}
	if opt.DurationMinutes != nil {
		t.DurationMinutes = *opt.DurationMinutes
	}
	if opt.Tags != nil {
		t.Tags = normalizeTags(opt.Tags)
	}
	if opt.PriorityHint != nil {
		t.PriorityHint = *opt.PriorityHint
	}
	if opt.Status != nil {
		t.Status = *opt.Status
	}

	tasks[idx] = t
	if err := r.save(tasks); err != nil {
		r.l.Errorf(ctx, "jsonfile.UpdateTask save: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

// DeleteTask removes the task with the given id and reports whether one matched.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	tasks, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return false, nil
	}

	if err := r.save(kept); err != nil {
		r.l.Errorf(ctx, "jsonfile.DeleteTask save: %v", err)
		return false, err
	}
	return true, nil
}

// normalizeTags trims tags, drops empties and repeats, and never returns nil.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
