package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	SubmitCommand(c *gin.Context)
	Classify(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
