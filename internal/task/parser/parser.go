package parser

import (
	"context"
	"errors"
)

var (
	ErrEmptyReply   = errors.New("completion service returned an empty reply")
	ErrNoJSONObject = errors.New("no JSON object in reply")
	ErrInvalidReply = errors.New("reply does not match the task schema")
)

// Parser turns free text into a candidate task.
type Parser interface {
	Parse(ctx context.Context, text string) (ParsedTask, error)
}

// ParsedTask is an unvalidated candidate. Zero values mean "absent".
type ParsedTask struct {
	Title           string
	Description     string
	DueDate         string
	DurationMinutes int
	Tags            []string
	PriorityHint    string
}
