package http

import (
	"daily-task-agent/internal/model"
	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/scheduler"
	"daily-task-agent/internal/summary"
	"daily-task-agent/pkg/response"
)

// --- Request DTOs ---

type prioritizedReq struct {
	Status string `form:"status"`
}

func (r prioritizedReq) toInput() planning.PrioritizeInput {
	return planning.PrioritizeInput{Status: r.Status}
}

type scheduleReq struct {
	Day    string `form:"day"`
	Export bool   `form:"export"`
}

func (r scheduleReq) toInput() planning.ScheduleInput {
	return planning.ScheduleInput{Day: r.Day, Export: r.Export}
}

// --- Response DTOs ---

type scoredTaskResp struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	DueDate         string   `json:"due_date,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	PriorityHint    string   `json:"priority_hint,omitempty"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
	Score           float64  `json:"score"`
}

func newScoredTaskResp(t model.Task) scoredTaskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return scoredTaskResp{
		ID:              t.ID,
		Title:           t.Title,
		DueDate:         t.DueDate,
		DurationMinutes: t.DurationMinutes,
		PriorityHint:    t.PriorityHint,
		Tags:            tags,
		Status:          t.Status,
		Score:           t.Score,
	}
}

type prioritizedResp struct {
	Tasks []scoredTaskResp `json:"tasks"`
}

func (h *handler) newPrioritizedResp(out planning.PrioritizeOutput) prioritizedResp {
	items := make([]scoredTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		items[i] = newScoredTaskResp(t)
	}
	return prioritizedResp{Tasks: items}
}

type slotResp struct {
	TaskID  string            `json:"task_id,omitempty"`
	Title   string            `json:"title"`
	Start   response.DateTime `json:"start"`
	End     response.DateTime `json:"end"`
	IsBreak bool              `json:"is_break"`
}

type unscheduledResp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

type exportResp struct {
	Available bool `json:"available"`
	Created   int  `json:"created"`
	Existing  int  `json:"existing"`
	Failed    int  `json:"failed"`
}

type scheduleResp struct {
	Day         response.Date     `json:"day"`
	Scheduled   []slotResp        `json:"scheduled"`
	Unscheduled []unscheduledResp `json:"unscheduled"`
	Export      *exportResp       `json:"export,omitempty"`
}

func newSlotResp(s scheduler.Slot) slotResp {
	return slotResp{
		TaskID:  s.TaskID,
		Title:   s.Title,
		Start:   response.DateTime(s.Start),
		End:     response.DateTime(s.End),
		IsBreak: s.IsBreak,
	}
}

func (h *handler) newScheduleResp(out planning.ScheduleOutput) scheduleResp {
	resp := scheduleResp{
		Day:         response.Date(out.Schedule.Day),
		Scheduled:   make([]slotResp, len(out.Schedule.Scheduled)),
		Unscheduled: make([]unscheduledResp, len(out.Schedule.Unscheduled)),
	}
	for i, s := range out.Schedule.Scheduled {
		resp.Scheduled[i] = newSlotResp(s)
	}
	for i, t := range out.Schedule.Unscheduled {
		resp.Unscheduled[i] = unscheduledResp{ID: t.ID, Title: t.Title, DurationMinutes: t.EffectiveDuration()}
	}
	if out.Export.Requested {
		resp.Export = &exportResp{
			Available: out.Export.Available,
			Created:   out.Export.Created,
			Existing:  out.Export.Existing,
			Failed:    out.Export.Failed,
		}
	}
	return resp
}

type summaryResp struct {
	Completed   int      `json:"completed"`
	Pending     int      `json:"pending"`
	Suggestions []string `json:"suggestions"`
	Text        string   `json:"text"`
}

func (h *handler) newSummaryResp(s summary.Summary) summaryResp {
	return summaryResp{
		Completed:   len(s.Completed),
		Pending:     len(s.Pending),
		Suggestions: s.Suggestions,
		Text:        s.Text,
	}
}
