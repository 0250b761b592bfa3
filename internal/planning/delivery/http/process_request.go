package http

import "github.com/gin-gonic/gin"

// processPrioritizedReq binds the prioritized-list query parameters.
func (h *handler) processPrioritizedReq(c *gin.Context) (prioritizedReq, error) {
	var req prioritizedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processScheduleReq binds the schedule query parameters.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
