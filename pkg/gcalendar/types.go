package gcalendar

import "time"

// TaskIDProperty is the private extended property that links an event back to the
// agent task it was scheduled from.
const TaskIDProperty = "daily_task_id"

// CreateEventRequest describes one scheduled task slot to place on the calendar.
// TaskID is stored on the event so later exports can recognise it after a rename.
type CreateEventRequest struct {
	CalendarID  string // empty means "primary"
	TaskID      string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name; empty keeps the offset in StartTime
}

// Event is a calendar event as the exporter sees it.
// TaskID is empty for events the agent did not create.
type Event struct {
	ID        string
	TaskID    string
	Summary   string
	HTMLLink  string
	StartTime time.Time
	EndTime   time.Time
}

// ListEventsRequest selects the single events overlapping [TimeMin, TimeMax).
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
