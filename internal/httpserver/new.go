package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-task-agent/internal/metrics"
	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/task"
	"daily-task-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	rateLimitPerMin int
	metrics         *metrics.Metrics

	// Domains
	taskUC     task.UseCase
	planningUC planning.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Metrics is optional. When set, /metrics is exposed.
	Metrics *metrics.Metrics

	TaskUC     task.UseCase
	PlanningUC planning.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		metrics:         cfg.Metrics,
		taskUC:          cfg.TaskUC,
		planningUC:      cfg.PlanningUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.planningUC == nil {
		return errors.New("planning usecase is required")
	}
	return nil
}
