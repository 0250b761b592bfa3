package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-agent/pkg/response"
)

// Prioritized godoc
// @Summary     Prioritized tasks
// @Description Returns tasks ordered by score, highest first.
// @Tags        Planning
// @Produce     json
// @Param       status query string false "todo (default), done or all"
// @Success     200 {object} prioritizedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/prioritized [GET]
func (h *handler) Prioritized(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPrioritizedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Prioritize(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newPrioritizedResp(out))
}

// Schedule godoc
// @Summary     Daily schedule
// @Description Plans pending tasks inside the working window and optionally exports them to Google Calendar.
// @Tags        Planning
// @Produce     json
// @Param       day    query string false "Day expression (today, tomorrow, next monday, 2026-03-02)"
// @Param       export query bool   false "Create calendar events for scheduled tasks"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/schedule [GET]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(out))
}

// Summary godoc
// @Summary     End-of-day summary
// @Tags        Planning
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planning/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Summary(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(s))
}
