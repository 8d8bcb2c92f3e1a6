package http

import (
	"jarvis-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Command routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/command", mw.RateLimit(), h.SubmitCommand)
	rg.POST("/classify", mw.RateLimit(), h.Classify)
	rg.GET("/status", h.Status)
}
