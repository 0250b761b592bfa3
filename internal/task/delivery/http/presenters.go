package http

import (
	"daily-task-agent/internal/model"
	"daily-task-agent/internal/session"
	"daily-task-agent/internal/task"
)

// --- Request DTOs ---

type intakeReq struct {
	Text string `json:"text"`
}

func (r intakeReq) toInput() task.HandleInput {
	return task.HandleInput{Text: r.Text}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=todo done"`
	Tag    string `form:"tag"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: r.Status, Tag: r.Tag}
}

// ---

type updateReq struct {
	ID              string    `json:"-"` // populated from URI param
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	DueDate         *string   `json:"due_date"`
	DurationMinutes *int      `json:"duration_minutes"`
	Tags            *[]string `json:"tags"`
	PriorityHint    *string   `json:"priority_hint"`
	Status          *string   `json:"status"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		DueDate:         r.DueDate,
		DurationMinutes: r.DurationMinutes,
		PriorityHint:    r.PriorityHint,
		Status:          r.Status,
	}
	if r.Tags != nil {
		in.Tags = *r.Tags
		if in.Tags == nil {
			in.Tags = []string{}
		}
	}
	return in
}

// ---

type messagesReq struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	DueDate         string   `json:"due_date,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Tags            []string `json:"tags"`
	PriorityHint    string   `json:"priority_hint,omitempty"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		DueDate:         t.DueDate,
		DurationMinutes: t.DurationMinutes,
		Tags:            tags,
		PriorityHint:    t.PriorityHint,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
	}
}

type intakeResp struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Task    *taskResp `json:"task,omitempty"`
}

func (h *handler) newIntakeResp(out task.HandleOutput) intakeResp {
	resp := intakeResp{Success: out.Success, Message: out.Message}
	if out.Task != nil {
		tr := newTaskResp(*out.Task)
		resp.Task = &tr
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Tasks: items, Total: len(items)}
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(t)}
}

type messagesResp struct {
	Messages []session.Message `json:"messages"`
}
