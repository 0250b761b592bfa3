package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "daily-task-agent/docs"
	"daily-task-agent/internal/metrics"
	"daily-task-agent/internal/middleware"
	planningUC "daily-task-agent/internal/planning/usecase"
	"daily-task-agent/internal/prioritizer"
	"daily-task-agent/internal/scheduler"
	"daily-task-agent/internal/session"
	"daily-task-agent/internal/summary"
	"daily-task-agent/internal/task/parser"
	"daily-task-agent/internal/task/repository/jsonfile"
	taskUC "daily-task-agent/internal/task/usecase"
	"daily-task-agent/pkg/datemath"
	"daily-task-agent/pkg/log"
)

func newServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	store := jsonfile.New(filepath.Join(t.TempDir(), "tasks.json"), l)
	sched, err := scheduler.New(l, scheduler.DefaultWorkStart, scheduler.DefaultWorkEnd)
	require.NoError(t, err)
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	cfg.Port = 8080
	cfg.Mode = "test"
	if cfg.TaskUC == nil {
		cfg.TaskUC = taskUC.New(l, store, parser.NewHeuristic(), session.New(20), cfg.Metrics)
	}
	cfg.PlanningUC = planningUC.New(l, planningUC.Config{
		Repo:        store,
		Prioritizer: prioritizer.New(l),
		Scheduler:   sched,
		Summarizer:  summary.New(),
		DateMath:    dm,
	})

	srv, err := New(l, cfg)
	require.NoError(t, err)
	return srv
}

func request(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.Error(t, err)

	_, err = New(nil, Config{})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, Config{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := request(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	}

	// Without metrics there is no /metrics route.
	assert.Equal(t, http.StatusNotFound, request(srv, http.MethodGet, "/metrics", "").Code)
}

func TestReadyCheck_StoreUnavailable(t *testing.T) {
	l := log.NewNop()
	// A directory where the store file should be cannot be read as one.
	store := jsonfile.New(t.TempDir(), l)

	srv := newServer(t, Config{
		TaskUC: taskUC.New(l, store, parser.NewHeuristic(), session.New(20), nil),
	})

	w := request(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, http.StatusOK, request(srv, http.MethodGet, "/live", "").Code)
}

func TestSwaggerDoc(t *testing.T) {
	srv := newServer(t, Config{})

	w := request(srv, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Daily Task Agent API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/planning/schedule")
	assert.Contains(t, doc.Paths, "/api/v1/tasks/intake")
}

func TestIntakeThenSchedule(t *testing.T) {
	srv := newServer(t, Config{Metrics: metrics.New()})

	w := request(srv, http.MethodPost, "/api/v1/tasks/intake", `{"text":"Write report for 2 hours"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(srv, http.MethodGet, "/api/v1/planning/schedule?day=2026-03-02", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Scheduled []struct {
				Title string `json:"title"`
				Start string `json:"start"`
			} `json:"scheduled"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Scheduled)
	assert.Equal(t, "2026-03-02T09:00:00Z", body.Data.Scheduled[0].Start)

	w = request(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "taskagent_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/v1/tasks/intake"`)
}

func TestRateLimitApplied(t *testing.T) {
	srv := newServer(t, Config{RateLimitPerMin: 10}) // burst of 1

	assert.Equal(t, http.StatusOK, request(srv, http.MethodGet, "/api/v1/tasks", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(srv, http.MethodGet, "/api/v1/tasks", "").Code)

	// System routes are not limited.
	assert.Equal(t, http.StatusOK, request(srv, http.MethodGet, "/health", "").Code)
}
