package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-task-agent/internal/planning"
	"daily-task-agent/pkg/response"
)

// writeError maps domain errors to HTTP responses. Unknown errors are 500.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planning.ErrInvalidDay), errors.Is(err, planning.ErrInvalidStatus):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "planning.http: %v", err)
		response.InternalError(c, err)
	}
}
