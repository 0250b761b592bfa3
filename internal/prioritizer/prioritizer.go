package prioritizer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"daily-task-agent/internal/model"
	"daily-task-agent/pkg/log"
)

const (
	urgencyWeight    = 0.6
	importanceWeight = 0.4
	penaltyWeight    = 0.1

	// NoDueDateDays stands in for a missing or unparseable due date.
	NoDueDateDays = 9999.0

	defaultImportance = 0.5
)

var importance = map[string]float64{
	model.PriorityHigh:   1.0,
	model.PriorityMedium: 0.6,
	model.PriorityLow:    0.2,
}

// dueLayouts are tried in order. Layouts without a zone are read as UTC.
var dueLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ScoreFunc computes the score of one task at now.
type ScoreFunc func(t model.Task, now time.Time) float64

// Prioritizer orders tasks by a weighted urgency/importance/duration score.
type Prioritizer struct {
	l     log.Logger
	now   func() time.Time
	score ScoreFunc
}

// Option configures a Prioritizer.
type Option func(*Prioritizer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Prioritizer) { p.now = now }
}

// WithScoreFunc replaces the default Score.
func WithScoreFunc(f ScoreFunc) Option {
	return func(p *Prioritizer) { p.score = f }
}

// New creates a Prioritizer.
func New(l log.Logger, opts ...Option) *Prioritizer {
	p := &Prioritizer{
		l:     l,
		now:   time.Now,
		score: Score,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prioritize returns a scored copy of tasks sorted by descending score.
// Ties keep their input order. The input slice is not modified.
func (p *Prioritizer) Prioritize(ctx context.Context, tasks []model.Task) []model.Task {
	now := p.now()

	ordered := make([]model.Task, len(tasks))
	copy(ordered, tasks)
	for i := range ordered {
		ordered[i].Score = p.safeScore(ctx, ordered[i], now)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	p.l.Infof(ctx, "prioritizer: prioritized %d tasks", len(ordered))
	p.l.Infof(ctx, "prioritizer: top tasks: %s", topSummary(ordered, 3))

	return ordered
}

// safeScore isolates a single task: a panic or a non-finite result scores 0.
func (p *Prioritizer) safeScore(ctx context.Context, t model.Task, now time.Time) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			p.l.Warnf(ctx, "prioritizer: scoring task %s panicked: %v", t.ID, r)
			score = 0
		}
	}()

	score = p.score(t, now)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		p.l.Warnf(ctx, "prioritizer: task %s scored %v, using 0", t.ID, score)
		return 0
	}
	return score
}

// Score is 0.6*urgency + 0.4*importance - 0.1*duration penalty.
func Score(t model.Task, now time.Time) float64 {
	return urgencyWeight*Urgency(DaysUntilDue(t.DueDate, now)) +
		importanceWeight*Importance(t.PriorityHint) -
		penaltyWeight*DurationPenalty(t.DurationMinutes)
}

// Urgency is 1/(days+0.5).
func Urgency(days float64) float64 {
	return 1.0 / (days + 0.5)
}

// Importance maps a priority hint to a weight; unknown hints are 0.5.
func Importance(hint string) float64 {
	if v, ok := importance[hint]; ok {
		return v
	}
	return defaultImportance
}

// DurationPenalty is min(d/120, 1), with non-positive d read as the default duration.
func DurationPenalty(minutes int) float64 {
	if minutes <= 0 {
		minutes = model.DefaultDurationMinutes
	}
	return math.Min(float64(minutes)/120.0, 1.0)
}

// DaysUntilDue returns fractional days from now until due, floored at 0.
// Missing or unparseable values return NoDueDateDays.
func DaysUntilDue(due string, now time.Time) float64 {
	due = strings.TrimSpace(due)
	if due == "" {
		return NoDueDateDays
	}

	for _, layout := range dueLayouts {
		t, err := time.Parse(layout, due)
		if err != nil {
			continue
		}
		days := t.Sub(now).Hours() / 24
		return math.Max(days, 0)
	}
	return NoDueDateDays
}

func topSummary(tasks []model.Task, n int) string {
	if len(tasks) == 0 {
		return "none"
	}
	if len(tasks) < n {
		n = len(tasks)
	}
	parts := make([]string, 0, n)
	for _, t := range tasks[:n] {
		parts = append(parts, fmt.Sprintf("%s(%.2f)", t.Title, t.Score))
	}
	return strings.Join(parts, ", ")
}
