package summary

import (
	"fmt"
	"strings"

	"daily-task-agent/internal/model"
)

const maxSuggestions = 3

// Summary is the deterministic end-of-day report.
type Summary struct {
	Completed   []model.Task
	Pending     []model.Task
	Suggestions []string
	Text        string
}

// Summarizer builds end-of-day summaries without any external service.
type Summarizer struct{}

// New creates a Summarizer.
func New() *Summarizer {
	return &Summarizer{}
}

// GenerateEndOfDaySummary splits tasks into done and pending and suggests the first
// three pending titles, in input order, for tomorrow.
func (s *Summarizer) GenerateEndOfDaySummary(tasks []model.Task) Summary {
	out := Summary{
		Completed:   []model.Task{},
		Pending:     []model.Task{},
		Suggestions: []string{},
	}
	for _, t := range tasks {
		if t.IsDone() {
			out.Completed = append(out.Completed, t)
		} else {
			out.Pending = append(out.Pending, t)
		}
	}

	for i := 0; i < len(out.Pending) && i < maxSuggestions; i++ {
		out.Suggestions = append(out.Suggestions, out.Pending[i].Title)
	}

	focus := "no pending tasks."
	if len(out.Suggestions) > 0 {
		focus = strings.Join(out.Suggestions, ", ")
	}
	out.Text = fmt.Sprintf("Today you completed %d task(s). %d task(s) remain. Suggested focus for tomorrow: %s",
		len(out.Completed), len(out.Pending), focus)

	return out
}
