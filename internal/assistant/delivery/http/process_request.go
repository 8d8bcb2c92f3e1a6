package http

import (
	"github.com/gin-gonic/gin"
)

// processCommandReq binds and validates the command request body.
// A malformed or missing body is reported as a missing command.
func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "internal.assistant.delivery.http.processCommandReq: %v", err)
		return req, errNoCommand
	}
	return req, req.validate()
}
