package usecase

import (
	"strings"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/task"
	"daily-task-agent/internal/task/parser"
	repo "daily-task-agent/internal/task/repository"
)

// coerce validates a parsed candidate into store options.
// Title is required; unknown priority hints and durations outside (0, MaxDurationMinutes] are dropped.
func coerce(pt parser.ParsedTask) (repo.CreateTaskOptions, error) {
	title := strings.TrimSpace(pt.Title)
	if title == "" {
		return repo.CreateTaskOptions{}, task.ErrEmptyTitle
	}

	opt := repo.CreateTaskOptions{
		Title:       title,
		Description: pt.Description,
		DueDate:     strings.TrimSpace(pt.DueDate),
		Tags:        pt.Tags,
		Status:      model.StatusTodo,
	}
	if model.IsValidDuration(pt.DurationMinutes) {
		opt.DurationMinutes = pt.DurationMinutes
	}
	if p := normalizePriority(pt.PriorityHint); model.IsValidPriority(p) {
		opt.PriorityHint = p
	}
	return opt, nil
}

func normalizePriority(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}
