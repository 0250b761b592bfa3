package task

import "daily-task-agent/internal/model"

// --- UseCase Inputs ---

type HandleInput struct {
	Text string
}

type ListInput struct {
	Status string
	Tag    string
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID              string
	Title           *string
	Description     *string
	DueDate         *string
	DurationMinutes *int
	Tags            []string // nil leaves tags unchanged, empty clears them
	PriorityHint    *string
	Status          *string
}

// --- UseCase Outputs ---

// HandleOutput is the structured result of one intake.
type HandleOutput struct {
	Success bool
	Task    *model.Task
	Message string // acknowledgement on success
	Error   string // failure text when !Success
	Err     error  // underlying error, for errors.Is
}
