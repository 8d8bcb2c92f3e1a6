package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	pkgLog "jarvis-assistant/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers a text reply to a chat. *pkg/telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l      pkgLog.Logger
	uc     assistant.UseCase
	sender Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, sender Sender) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		sender: sender,
	}
}
