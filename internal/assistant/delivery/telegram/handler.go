package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	pkgLog "jarvis-assistant/pkg/log"
	pkgResponse "jarvis-assistant/pkg/response"
	pkgTelegram "jarvis-assistant/pkg/telegram"
)

const (
	commandStart = "/start"
	commandHelp  = "/help"

	msgWelcome = "Good day, Sir. Send me a command such as \"what time is it\", \"battery status\" or \"help\"."
	msgFailure = "I was unable to process that request, Sir. Please try again."
)

// HandleWebhook acknowledges the update right away and answers the message in the background,
// so a slow telemetry read never holds up Telegram's webhook call.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), fmt.Sprintf("tg-%d", update.UpdateID))
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage: %v", err)
			_ = h.sender.SendMessage(bgCtx, msg.Chat.ID, msgFailure)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers one chat message through the assistant.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := msg.Text
	switch text {
	case "":
		return nil
	case commandStart:
		return h.sender.SendMessage(ctx, msg.Chat.ID, msgWelcome)
	case commandHelp:
		text = "help"
	}

	resp, err := h.uc.SubmitCommand(ctx, assistant.SubmitCommandInput{Command: text})
	if err != nil {
		return fmt.Errorf("uc.SubmitCommand: %w", err)
	}

	return h.sender.SendMessage(ctx, msg.Chat.ID, resp.Text)
}
