package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-agent/internal/model"
)

const testConfig = `
environment:
  name: test
  timezone: UTC
logger:
  level: error
  file_path: ""
  color_enabled: false
schedule:
  work_start: "09:00"
  work_end: "18:00"
`

type cli struct {
	t      *testing.T
	config string
	store  string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("TASKS_PATH", "")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(testConfig), 0o644))

	return &cli{t: t, config: cfgPath, store: filepath.Join(dir, "tasks.json")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", c.config, "--store", c.store}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (c *cli) tasks() []model.Task {
	c.t.Helper()
	data, err := os.ReadFile(c.store)
	require.NoError(c.t, err)
	var tasks []model.Task
	require.NoError(c.t, json.Unmarshal(data, &tasks))
	return tasks
}

func TestTaskLifecycle(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("add", "Write", "report", "2", "hours")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved task: Write report 2 hours")

	_, err = c.run("add", "Team meeting 45 min")
	require.NoError(t, err)

	tasks := c.tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, 120, tasks[0].DurationMinutes)
	assert.Equal(t, []string{"meeting"}, tasks[1].Tags)

	out, err = c.run("list", "--tag", "meeting")
	require.NoError(t, err)
	assert.Contains(t, out, "Team meeting 45 min")
	assert.NotContains(t, out, "Write report")

	out, err = c.run("update", tasks[0].ID, "--priority", "HIGH", "--tags", "work,writing")
	require.NoError(t, err)
	assert.Contains(t, out, "priority:  high")
	assert.Contains(t, out, "work,writing")

	out, err = c.run("done", tasks[1].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed: Team meeting 45 min")

	out, err = c.run("summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Today you completed 1 task(s). 1 task(s) remain. Suggested focus for tomorrow: Write report 2 hours")

	out, err = c.run("delete", tasks[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted: "+tasks[0].ID)
	assert.Len(t, c.tasks(), 1)
}

func TestAdd_Duplicate(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("add", "Buy milk")
	require.NoError(t, err)

	_, err = c.run("add", "  buy MILK ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate task")
	assert.Len(t, c.tasks(), 1)
}

func TestSchedule(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("add", "Deep work 3 hours")
	require.NoError(t, err)
	_, err = c.run("add", "Email 30 min")
	require.NoError(t, err)

	out, err := c.run("schedule", "--day", "2026-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule for Mon 2026-03-02")
	assert.Contains(t, out, "09:00-09:30  Email 30 min")
	assert.Contains(t, out, "09:35-12:35  Deep work 3 hours")
	assert.Contains(t, out, "12:40-12:55  Short break")

	out, err = c.run("schedule", "--export")
	require.NoError(t, err)
	assert.Contains(t, out, "Calendar export skipped")

	_, err = c.run("schedule", "--day", "someday")
	assert.Error(t, err)
}

func TestPrioritize(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("add", "Low thing")
	require.NoError(t, err)
	_, err = c.run("add", "Urgent thing")
	require.NoError(t, err)

	tasks := c.tasks()
	_, err = c.run("update", tasks[1].ID, "--priority", "high")
	require.NoError(t, err)

	out, err := c.run("prioritize")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Urgent thing")), bytes.Index([]byte(out), []byte("Low thing")))

	_, err = c.run("prioritize", "--status", "later")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved task: Finish ML assignment tomorrow 3 hours")
	assert.Contains(t, out, "Loaded 2 task(s) from the store")
	assert.Contains(t, out, "Summary")
	assert.Len(t, c.tasks(), 2)

	// A second run hits the duplicate check instead of adding again.
	out, err = c.run("demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped")
	assert.Len(t, c.tasks(), 2)
}

func TestErrors(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("done", "missing")
	assert.Error(t, err)

	_, err = c.run("list", "--status", "later")
	assert.Error(t, err)

	_, err = c.run("add")
	assert.Error(t, err)

	_, err = c.run("calendar-auth")
	assert.Error(t, err)
}
