package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/pkg/response"
)

// SubmitCommand godoc
// @Summary     Submit a command
// @Description Classifies a free-text command and returns the assistant's answer.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command"
// @Success     200  {object} commandResp
// @Failure     400  {object} response.Resp "No command provided"
// @Failure     429  {object} response.Resp "Too many requests"
// @Router      /api/command [POST]
func (h *handler) SubmitCommand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SubmitCommand(ctx, req.toSubmitInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitCommand: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// Classify godoc
// @Summary     Classify a command
// @Description Returns the intent a command resolves to without running it.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "No command provided"
// @Router      /api/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toClassifyInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}

// Status godoc
// @Summary     Assistant status
// @Description Returns the assistant identity and the current server time.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}
