package model

import "strings"

// Task statuses.
const (
	StatusTodo = "todo"
	StatusDone = "done"
)

// Priority hints accepted on a task.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// DefaultDurationMinutes is used wherever a task carries no positive duration.
const DefaultDurationMinutes = 30

// MaxDurationMinutes is the longest duration a task may carry: one week.
const MaxDurationMinutes = 7 * 24 * 60

// Task is the only persisted entity of the agent.
type Task struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	DueDate         string   `json:"due_date,omitempty"`         // ISO-8601 date or date-time
	DurationMinutes int      `json:"duration_minutes,omitempty"` // 0 means unset
	Tags            []string `json:"tags"`
	PriorityHint    string   `json:"priority_hint,omitempty"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at"` // RFC3339, set once

	// Score is written by the prioritizer and never persisted.
	Score float64 `json:"-"`
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// EffectiveDuration returns the duration in minutes, defaulting non-positive values.
func (t Task) EffectiveDuration() int {
	if t.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return t.DurationMinutes
}

// IsValidDuration reports whether d is a usable positive duration in minutes.
func IsValidDuration(d int) bool {
	return d > 0 && d <= MaxDurationMinutes
}

// HasTag reports whether tag is one of the task's tags.
func (t Task) HasTag(tag string) bool {
	for _, v := range t.Tags {
		if v == tag {
			return true
		}
	}
	return false
}

// NormalizeTitle is the key titles are compared under for duplicate detection.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// IsValidPriority reports whether p is one of the known priority hints.
func IsValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// IsValidStatus reports whether s is a known status.
func IsValidStatus(s string) bool {
	return s == StatusTodo || s == StatusDone
}
