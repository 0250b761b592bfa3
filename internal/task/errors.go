package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle      = errors.New("task must have a non-empty title")
	ErrDuplicateTitle  = errors.New("duplicate task")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("status must be todo or done")
	ErrInvalidPriority = errors.New("priority_hint must be high, medium or low")
	ErrInvalidDuration = errors.New("duration_minutes must not exceed one week (10080)")
)
