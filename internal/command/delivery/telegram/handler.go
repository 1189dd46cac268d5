package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	pkgResponse "voice-task-management/pkg/response"
	pkgTelegram "voice-task-management/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and runs the command in the background, since a
// model call can outlast Telegram's webhook timeout.
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
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if text == "" {
		if msg.Voice != nil {
			return h.bot.SendMessage(ctx, chatID, voiceNotice)
		}
		return nil
	}

	switch strings.ToLower(strings.Fields(text)[0]) {
	case "/start":
		return h.bot.SendMessage(ctx, chatID, startText)
	case "/help":
		return h.bot.SendMessage(ctx, chatID, helpText)
	case "/list":
		return h.list(ctx, msg)
	case "/clear":
		unlock := h.sessions.lock(chatID)
		h.sessions.clear(chatID)
		unlock()
		return h.bot.SendMessage(ctx, chatID, clearedText)
	}

	unlock := h.sessions.lock(chatID)
	defer unlock()

	output, err := h.uc.Process(ctx, scopeOf(msg), command.ProcessInput{
		Transcript:   text,
		CurrentTasks: h.sessions.load(chatID),
	})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: uc.Process chat=%d: %v", chatID, err)
		return h.bot.SendMessage(ctx, chatID, errorMessage(err))
	}

	h.sessions.save(chatID, output.Snapshot)
	return h.bot.SendMessage(ctx, chatID, formatResult(output.Result, output.Snapshot))
}

func (h *handler) list(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	unlock := h.sessions.lock(chatID)
	output, err := h.uc.Execute(ctx, scopeOf(msg), command.ExecuteInput{
		Intent:       model.IntentRecord{Intent: model.IntentList},
		CurrentTasks: h.sessions.load(chatID),
	})
	if err == nil {
		h.sessions.save(chatID, output.Snapshot)
	}
	unlock()

	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Execute list chat=%d: %v", chatID, err)
		return h.bot.SendMessage(ctx, chatID, errorMessage(err))
	}
	return h.bot.SendMessage(ctx, chatID, formatTaskList(output.Snapshot))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	userID := fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)
	if msg.From != nil {
		userID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}
	return model.Scope{UserID: userID, Channel: model.ChannelTelegram}
}
