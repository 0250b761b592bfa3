package http

import "github.com/gin-gonic/gin"

// processIntakeReq binds the intake request body. Blank text is left to the use case.
func (h *handler) processIntakeReq(c *gin.Context) (intakeReq, error) {
	var req intakeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the partial update body and the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processMessagesReq binds the recent-message query parameters.
func (h *handler) processMessagesReq(c *gin.Context) (messagesReq, error) {
	var req messagesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
