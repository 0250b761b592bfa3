package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	planningHTTP "daily-task-agent/internal/planning/delivery/http"
	taskHTTP "daily-task-agent/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupPlanningDomain registers /api/v1/planning.
func (srv HTTPServer) setupPlanningDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := planningHTTP.New(srv.l, srv.planningUC)
	planningHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Planning domain registered")
	return nil
}
