package usecase

import (
	"context"
	"time"

	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/scheduler"
	"daily-task-agent/pkg/gcalendar"
)

// export creates one calendar event per task slot. Break slots are skipped, and so are
// slots already on the calendar that day, matched by task ID or by title and start.
// Failures are logged and counted, never returned.
func (uc *implUseCase) export(ctx context.Context, sched scheduler.Schedule) planning.ExportResult {
	res := planning.ExportResult{Requested: true, Available: uc.calendar != nil}
	if uc.calendar == nil {
		uc.l.Warnf(ctx, "uc.export: calendar export requested but no calendar is configured")
		return res
	}

	existing := uc.existingEvents(ctx, sched.Day)
	tz := sched.Day.Location().String()
	if tz == "Local" {
		tz = ""
	}

	for _, slot := range sched.Scheduled {
		if slot.IsBreak {
			continue
		}
		if existing.has(slot) {
			res.Existing++
			continue
		}

		ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			TaskID:      slot.TaskID,
			Summary:     slot.Title,
			Description: "Scheduled by daily-task-agent (task " + slot.TaskID + ")",
			StartTime:   slot.Start,
			EndTime:     slot.End,
			Timezone:    tz,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.export: CreateEvent %q: %v", slot.Title, err)
			res.Failed++
			uc.metrics.RecordCalendarExport(false)
			continue
		}

		uc.l.Infof(ctx, "uc.export: created event %s for %q", ev.ID, slot.Title)
		res.Created++
		uc.metrics.RecordCalendarExport(true)
	}

	return res
}

type eventIndex map[string]struct{}

func (idx eventIndex) has(slot scheduler.Slot) bool {
	if slot.TaskID != "" {
		if _, ok := idx[eventKey("task:"+slot.TaskID, slot.Start)]; ok {
			return true
		}
	}
	_, ok := idx[eventKey(slot.Title, slot.Start)]
	return ok
}

// existingEvents indexes the day's events by title and by task ID, each paired with the start.
// A listing failure yields an empty index.
func (uc *implUseCase) existingEvents(ctx context.Context, day time.Time) eventIndex {
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    day,
		TimeMax:    day.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.export: ListEvents: %v", err)
		return eventIndex{}
	}

	idx := make(eventIndex, 2*len(events))
	for _, ev := range events {
		idx[eventKey(ev.Summary, ev.StartTime)] = struct{}{}
		if ev.TaskID != "" {
			idx[eventKey("task:"+ev.TaskID, ev.StartTime)] = struct{}{}
		}
	}
	return idx
}

func eventKey(title string, start time.Time) string {
	return title + "|" + start.UTC().Format(time.RFC3339)
}
