package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-agent/pkg/response"
)

// Intake godoc
// @Summary     Add a task from free text
// @Description Parses the text into a task and stores it. A failed intake answers 400 or 409.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body intakeReq true "Free-text task description"
// @Success     200  {object} intakeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Duplicate task"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/intake [POST]
func (h *handler) Intake(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIntakeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out := h.uc.Handle(ctx, req.toInput())
	if !out.Success {
		h.writeError(c, out.Err)
		return
	}

	response.OK(c, h.newIntakeResp(out))
}

// List godoc
// @Summary     List tasks
// @Description Returns stored tasks filtered by status and tag.
// @Tags        Tasks
// @Produce     json
// @Param       status query string false "Filter by status (todo/done)"
// @Param       tag    query string false "Filter by tag"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update. Omitted fields are left unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} taskDetailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Complete godoc
// @Summary     Mark a task done
// @Tags        Tasks
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/done [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Complete(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}

// Messages godoc
// @Summary     Recent session messages
// @Description Returns the most recent session messages, oldest first.
// @Tags        Tasks
// @Produce     json
// @Param       limit query int false "Number of messages (default: all kept)"
// @Success     200 {object} messagesResp
// @Router      /api/v1/tasks/messages [GET]
func (h *handler) Messages(c *gin.Context) {
	req, err := h.processMessagesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, messagesResp{Messages: h.uc.Recent(req.Limit)})
}
