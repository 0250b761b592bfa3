package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/prioritizer"
	"daily-task-agent/internal/scheduler"
	"daily-task-agent/internal/summary"
	"daily-task-agent/internal/task/repository"
	"daily-task-agent/internal/task/repository/jsonfile"
	"daily-task-agent/pkg/datemath"
	"daily-task-agent/pkg/gcalendar"
	"daily-task-agent/pkg/log"
)

// Monday 2026-03-02 07:00 UTC
var fixedNow = time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

type mockCalendar struct {
	existing []gcalendar.Event
	listErr  error
	failOn   string
	created  []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if req.Summary == m.failOn {
		return nil, errors.New("quota exceeded")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "ev-" + req.Summary, TaskID: req.TaskID, Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.existing, m.listErr
}

func newPlanning(t *testing.T, cal Calendar, tasks ...repository.CreateTaskOptions) *implUseCase {
	t.Helper()
	l := log.NewNop()

	store := jsonfile.New(filepath.Join(t.TempDir(), "tasks.json"), l)
	for _, opt := range tasks {
		_, err := store.CreateTask(context.Background(), opt)
		require.NoError(t, err)
	}

	sched, err := scheduler.New(l, scheduler.DefaultWorkStart, scheduler.DefaultWorkEnd)
	require.NoError(t, err)
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	clock := func() time.Time { return fixedNow }
	return New(l, Config{
		Repo:        store,
		Prioritizer: prioritizer.New(l, prioritizer.WithClock(clock)),
		Scheduler:   sched,
		Summarizer:  summary.New(),
		DateMath:    dm,
		Calendar:    cal,
		CalendarID:  "primary",
		Now:         clock,
	})
}

func TestPrioritize_DefaultsToPending(t *testing.T) {
	uc := newPlanning(t, nil,
		repository.CreateTaskOptions{Title: "low", PriorityHint: "low"},
		repository.CreateTaskOptions{Title: "done", Status: model.StatusDone, PriorityHint: "high"},
		repository.CreateTaskOptions{Title: "high", PriorityHint: "high"},
	)

	out, err := uc.Prioritize(context.Background(), planning.PrioritizeInput{})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "high", out.Tasks[0].Title)
	assert.Greater(t, out.Tasks[0].Score, out.Tasks[1].Score)

	all, err := uc.Prioritize(context.Background(), planning.PrioritizeInput{Status: planning.StatusAll})
	require.NoError(t, err)
	assert.Len(t, all.Tasks, 3)

	_, err = uc.Prioritize(context.Background(), planning.PrioritizeInput{Status: "later"})
	assert.ErrorIs(t, err, planning.ErrInvalidStatus)
}

func TestSchedule(t *testing.T) {
	uc := newPlanning(t, nil,
		repository.CreateTaskOptions{Title: "A", DurationMinutes: 180, PriorityHint: "high"},
		repository.CreateTaskOptions{Title: "B", DurationMinutes: 30, PriorityHint: "high"},
	)

	out, err := uc.Schedule(context.Background(), planning.ScheduleInput{Day: "tomorrow"})
	require.NoError(t, err)

	s := out.Schedule
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), s.Day)
	require.Len(t, s.Scheduled, 3)
	assert.Equal(t, "B", s.Scheduled[0].Title) // shorter task has the smaller penalty
	assert.Equal(t, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), s.Scheduled[0].Start)
	assert.Equal(t, "A", s.Scheduled[1].Title)
	assert.True(t, s.Scheduled[2].IsBreak)
	assert.False(t, out.Export.Requested)
}

func TestSchedule_InvalidDay(t *testing.T) {
	uc := newPlanning(t, nil)

	_, err := uc.Schedule(context.Background(), planning.ScheduleInput{Day: "someday"})
	assert.ErrorIs(t, err, planning.ErrInvalidDay)
	assert.ErrorIs(t, err, datemath.ErrUnknownExpression)
}

func TestSchedule_Export(t *testing.T) {
	tasks := []repository.CreateTaskOptions{
		{Title: "A", DurationMinutes: 120, PriorityHint: "high"},
		{Title: "B", DurationMinutes: 30, PriorityHint: "medium"},
		{Title: "C", DurationMinutes: 30, PriorityHint: "low"},
	}

	t.Run("no calendar configured", func(t *testing.T) {
		uc := newPlanning(t, nil, tasks...)
		out, err := uc.Schedule(context.Background(), planning.ScheduleInput{Export: true})
		require.NoError(t, err)
		assert.True(t, out.Export.Requested)
		assert.False(t, out.Export.Available)
		assert.Zero(t, out.Export.Created)
	})

	t.Run("breaks skipped, existing and failures counted", func(t *testing.T) {
		cal := &mockCalendar{failOn: "C"}
		uc := newPlanning(t, cal, tasks...)

		// A (120) is first: 09:00-11:00, break 11:05-11:20, B 11:20-11:50, C 11:55-12:25.
		cal.existing = []gcalendar.Event{
			{Summary: "B", StartTime: time.Date(2026, 3, 2, 11, 20, 0, 0, time.UTC)},
		}

		out, err := uc.Schedule(context.Background(), planning.ScheduleInput{Day: "today", Export: true})
		require.NoError(t, err)
		require.Len(t, out.Schedule.Scheduled, 4)

		assert.True(t, out.Export.Available)
		assert.Equal(t, 1, out.Export.Created)
		assert.Equal(t, 1, out.Export.Existing)
		assert.Equal(t, 1, out.Export.Failed)
		require.Len(t, cal.created, 1)
		assert.Equal(t, "A", cal.created[0].Summary)
		assert.Equal(t, "primary", cal.created[0].CalendarID)
		assert.Equal(t, "UTC", cal.created[0].Timezone)
		assert.Equal(t, out.Schedule.Scheduled[0].TaskID, cal.created[0].TaskID)
	})

	t.Run("renamed event matched by task id", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newPlanning(t, cal, tasks...)

		plan, err := uc.Schedule(context.Background(), planning.ScheduleInput{Day: "today"})
		require.NoError(t, err)
		first := plan.Schedule.Scheduled[0]
		require.Equal(t, "A", first.Title)

		cal.existing = []gcalendar.Event{
			{TaskID: first.TaskID, Summary: "A (moved to focus block)", StartTime: first.Start},
		}

		out, err := uc.Schedule(context.Background(), planning.ScheduleInput{Day: "today", Export: true})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Export.Existing)
		assert.Equal(t, 2, out.Export.Created)
		for _, req := range cal.created {
			assert.NotEqual(t, "A", req.Summary)
		}
	})

	t.Run("list failure still exports", func(t *testing.T) {
		cal := &mockCalendar{listErr: errors.New("unavailable")}
		uc := newPlanning(t, cal, tasks...)

		out, err := uc.Schedule(context.Background(), planning.ScheduleInput{Export: true})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Export.Created)
	})
}

func TestSummary(t *testing.T) {
	uc := newPlanning(t, nil,
		repository.CreateTaskOptions{Title: "a", Status: model.StatusDone},
		repository.CreateTaskOptions{Title: "b"},
		repository.CreateTaskOptions{Title: "c", Status: model.StatusDone},
		repository.CreateTaskOptions{Title: "d"},
		repository.CreateTaskOptions{Title: "e"},
	)

	got, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Today you completed 2 task(s). 3 task(s) remain. Suggested focus for tomorrow: b, d, e", got.Text)
}
