package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/session"
	"daily-task-agent/internal/task"
)

func newCRUDUseCase(tasks ...model.Task) (*implUseCase, *mockRepo) {
	r := &mockRepo{tasks: tasks}
	return New(&mockLogger{}, r, &mockParser{}, session.New(5), nil), r
}

func TestList(t *testing.T) {
	uc, _ := newCRUDUseCase(
		model.Task{ID: "1", Title: "a", Status: model.StatusTodo, Tags: []string{"meeting"}},
		model.Task{ID: "2", Title: "b", Status: model.StatusDone},
	)

	got, err := uc.List(context.Background(), task.ListInput{Status: model.StatusTodo})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	_, err = uc.List(context.Background(), task.ListInput{Status: "later"})
	assert.ErrorIs(t, err, task.ErrInvalidStatus)
}

func TestComplete(t *testing.T) {
	uc, r := newCRUDUseCase(model.Task{ID: "1", Title: "a", Status: model.StatusTodo})

	got, err := uc.Complete(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, got.Status)
	assert.Equal(t, model.StatusDone, r.tasks[0].Status)

	_, err = uc.Complete(context.Background(), "missing")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestUpdate_Validation(t *testing.T) {
	ptr := func(s string) *string { return &s }
	neg := -10
	tooLong := model.MaxDurationMinutes + 1
	huge := math.MaxInt32

	tests := []struct {
		name    string
		input   task.UpdateInput
		wantErr error
		check   func(t *testing.T, got model.Task)
	}{
		{
			name:    "bad status",
			input:   task.UpdateInput{ID: "1", Status: ptr("archived")},
			wantErr: task.ErrInvalidStatus,
		},
		{
			name:    "bad priority",
			input:   task.UpdateInput{ID: "1", PriorityHint: ptr("urgent")},
			wantErr: task.ErrInvalidPriority,
		},
		{
			name:  "priority lower-cased",
			input: task.UpdateInput{ID: "1", PriorityHint: ptr(" Medium ")},
			check: func(t *testing.T, got model.Task) { assert.Equal(t, model.PriorityMedium, got.PriorityHint) },
		},
		{
			name:  "priority cleared",
			input: task.UpdateInput{ID: "1", PriorityHint: ptr("")},
			check: func(t *testing.T, got model.Task) { assert.Empty(t, got.PriorityHint) },
		},
		{
			name:    "duration above one week",
			input:   task.UpdateInput{ID: "1", DurationMinutes: &tooLong},
			wantErr: task.ErrInvalidDuration,
		},
		{
			name:    "huge duration",
			input:   task.UpdateInput{ID: "1", DurationMinutes: &huge},
			wantErr: task.ErrInvalidDuration,
		},
		{
			name:  "negative duration unset",
			input: task.UpdateInput{ID: "1", DurationMinutes: &neg},
			check: func(t *testing.T, got model.Task) { assert.Equal(t, 0, got.DurationMinutes) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, r := newCRUDUseCase(model.Task{ID: "1", Title: "a", Status: model.StatusTodo, PriorityHint: "low", DurationMinutes: 30})

			got, err := uc.Update(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, r.updates)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestDelete(t *testing.T) {
	uc, r := newCRUDUseCase(model.Task{ID: "1", Title: "a"})

	require.NoError(t, uc.Delete(context.Background(), "1"))
	assert.Empty(t, r.tasks)

	assert.ErrorIs(t, uc.Delete(context.Background(), "1"), task.ErrTaskNotFound)
}

func TestDetail(t *testing.T) {
	uc, _ := newCRUDUseCase(model.Task{ID: "1", Title: "a"})

	got, err := uc.Detail(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)

	_, err = uc.Detail(context.Background(), "2")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
