package repository

// CreateTaskOptions holds the parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID              string // optional; generated when empty
	Title           string
	Description     string
	DueDate         string
	DurationMinutes int
	Tags            []string
	PriorityHint    string
	Status          string // defaults to "todo"
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	Status string
	Tag    string
}

// UpdateTaskOptions holds a partial update; nil fields are left unchanged.
type UpdateTaskOptions struct {
	Title           *string
	Description     *string
	DueDate         *string
	DurationMinutes *int
	Tags            []string // nil leaves tags unchanged
	PriorityHint    *string
	Status          *string
}
