package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-task-agent/internal/task"
	"daily-task-agent/pkg/response"
)

var errIDRequired = errors.New("id is required")

// writeError maps domain errors to HTTP responses. Unknown errors are 500.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrDuplicateTitle):
		response.ErrorWithStatus(c, http.StatusConflict, err, nil)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidDuration),
		errors.Is(err, errIDRequired):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "task.http: %v", err)
		response.InternalError(c, err)
	}
}
