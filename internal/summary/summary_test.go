package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/summary"
)

func TestGenerateEndOfDaySummary(t *testing.T) {
	tasks := []model.Task{
		{Title: "a", Status: model.StatusDone},
		{Title: "b", Status: model.StatusTodo},
		{Title: "c", Status: model.StatusDone},
		{Title: "d", Status: model.StatusTodo},
		{Title: "e", Status: ""},
	}

	s := summary.New()
	got := s.GenerateEndOfDaySummary(tasks)

	assert.Len(t, got.Completed, 2)
	assert.Len(t, got.Pending, 3)
	assert.Equal(t, []string{"b", "d", "e"}, got.Suggestions)
	assert.Equal(t, "Today you completed 2 task(s). 3 task(s) remain. Suggested focus for tomorrow: b, d, e", got.Text)

	// Deterministic for identical input.
	assert.Equal(t, got, s.GenerateEndOfDaySummary(tasks))
}

func TestGenerateEndOfDaySummary_SuggestionsCappedAtThree(t *testing.T) {
	tasks := []model.Task{{Title: "1"}, {Title: "2"}, {Title: "3"}, {Title: "4"}}

	got := summary.New().GenerateEndOfDaySummary(tasks)
	assert.Equal(t, []string{"1", "2", "3"}, got.Suggestions)
	assert.Len(t, got.Pending, 4)
}

func TestGenerateEndOfDaySummary_NothingPending(t *testing.T) {
	tests := []struct {
		name  string
		tasks []model.Task
		want  string
	}{
		{
			name:  "empty",
			tasks: nil,
			want:  "Today you completed 0 task(s). 0 task(s) remain. Suggested focus for tomorrow: no pending tasks.",
		},
		{
			name:  "all done",
			tasks: []model.Task{{Title: "x", Status: model.StatusDone}},
			want:  "Today you completed 1 task(s). 0 task(s) remain. Suggested focus for tomorrow: no pending tasks.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summary.New().GenerateEndOfDaySummary(tt.tasks)
			assert.Equal(t, tt.want, got.Text)
			assert.Empty(t, got.Suggestions)
		})
	}
}
