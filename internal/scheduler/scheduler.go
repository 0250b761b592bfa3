package scheduler

import (
	"context"
	"fmt"
	"time"

	"daily-task-agent/internal/model"
	"daily-task-agent/pkg/log"
)

const (
	// Buffer follows every scheduled task.
	Buffer = 5 * time.Minute
	// BreakLength is the length of the break inserted after long tasks.
	BreakLength = 15 * time.Minute
	// BreakThreshold is the task length from which a break is inserted.
	BreakThreshold = 90 * time.Minute

	BreakTitle = "Short break"

	DefaultWorkStart = 9 * time.Hour
	DefaultWorkEnd   = 18 * time.Hour
)

// Slot is one interval of a daily schedule. Break slots have no TaskID.
type Slot struct {
	TaskID  string
	Title   string
	Start   time.Time
	End     time.Time
	IsBreak bool
}

// Schedule is the result of one scheduling pass.
type Schedule struct {
	Day         time.Time
	Scheduled   []Slot
	Unscheduled []model.Task
}

// Scheduler places tasks first-fit into a single work-day window.
type Scheduler struct {
	l         log.Logger
	workStart time.Duration
	workEnd   time.Duration
}

// New creates a Scheduler for the window [workStart, workEnd), both offsets from midnight.
func New(l log.Logger, workStart, workEnd time.Duration) (*Scheduler, error) {
	if workStart < 0 || workEnd > 24*time.Hour || workEnd <= workStart {
		return nil, fmt.Errorf("invalid work window %s-%s", workStart, workEnd)
	}
	return &Scheduler{
		l:         l,
		workStart: workStart,
		workEnd:   workEnd,
	}, nil
}

// CreateDailySchedule walks tasks in the given order and places each one at the cursor when it
// ends by the end of the window. A task that does not fit is unscheduled and the cursor stays put.
// Tasks are never reordered.
func (s *Scheduler) CreateDailySchedule(ctx context.Context, day time.Time, tasks []model.Task) Schedule {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	cursor := midnight.Add(s.workStart)
	end := midnight.Add(s.workEnd)

	out := Schedule{
		Day:         midnight,
		Scheduled:   []Slot{},
		Unscheduled: []model.Task{},
	}

	for _, t := range tasks {
		// Compared in minutes so that huge durations cannot overflow time.Duration.
		mins := int64(t.EffectiveDuration())
		if mins > int64(end.Sub(cursor)/time.Minute) {
			out.Unscheduled = append(out.Unscheduled, t)
			continue
		}
		dur := time.Duration(mins) * time.Minute
		slotEnd := cursor.Add(dur)

		out.Scheduled = append(out.Scheduled, Slot{
			TaskID: t.ID,
			Title:  t.Title,
			Start:  cursor,
			End:    slotEnd,
		})
		cursor = slotEnd.Add(Buffer)

		if dur >= BreakThreshold {
			breakEnd := cursor.Add(BreakLength)
			if !breakEnd.After(end) {
				out.Scheduled = append(out.Scheduled, Slot{
					Title:   BreakTitle,
					Start:   cursor,
					End:     breakEnd,
					IsBreak: true,
				})
				cursor = breakEnd
			}
		}
	}

	s.l.Infof(ctx, "scheduler: schedule created for %s: %d scheduled, %d unscheduled",
		midnight.Format("2006-01-02"), len(out.Scheduled), len(out.Unscheduled))
	if n := len(out.Scheduled); n > 0 {
		first, last := out.Scheduled[0], out.Scheduled[n-1]
		s.l.Infof(ctx, "scheduler: first: %s %s -> %s", first.Title, first.Start.Format(time.RFC3339), first.End.Format(time.RFC3339))
		s.l.Infof(ctx, "scheduler: last: %s %s -> %s", last.Title, last.Start.Format(time.RFC3339), last.End.Format(time.RFC3339))
	}

	return out
}
