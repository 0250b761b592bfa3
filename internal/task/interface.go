package task

import (
	"context"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/session"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle runs one free-text intake. Domain failures come back in the output, not as error.
	Handle(ctx context.Context, input HandleInput) HandleOutput

	// Task CRUD
	List(ctx context.Context, input ListInput) ([]model.Task, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Complete(ctx context.Context, id string) (model.Task, error)
	Delete(ctx context.Context, id string) error

	// Recent returns up to n of the latest intake messages, oldest first.
	Recent(n int) []session.Message
}
