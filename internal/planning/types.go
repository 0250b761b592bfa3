package planning

import (
	"daily-task-agent/internal/model"
	"daily-task-agent/internal/scheduler"
)

// StatusAll selects every stored task regardless of status.
const StatusAll = "all"

// --- UseCase Inputs ---

// PrioritizeInput selects the tasks to order. Empty Status means pending tasks.
type PrioritizeInput struct {
	Status string
}

// ScheduleInput selects the day to plan. Day accepts "today", "tomorrow",
// "in N days", "next <weekday>" or YYYY-MM-DD; empty means today.
type ScheduleInput struct {
	Day    string
	Export bool
}

// --- UseCase Outputs ---

type PrioritizeOutput struct {
	Tasks []model.Task
}

// ExportResult counts calendar events for one export request.
type ExportResult struct {
	Requested bool
	Available bool // a calendar client is configured
	Created   int
	Existing  int // slots already present in the calendar
	Failed    int
}

type ScheduleOutput struct {
	Schedule scheduler.Schedule
	Export   ExportResult
}
