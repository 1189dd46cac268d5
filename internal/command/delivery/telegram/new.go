package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/command"
	pkgLog "voice-task-management/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a chat. *pkg/telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// SessionConfig bounds the per-chat task snapshots kept in memory.
type SessionConfig struct {
	TTL      time.Duration
	Capacity int
}

type handler struct {
	l        pkgLog.Logger
	uc       command.UseCase
	bot      Sender
	sessions *sessionStore
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc command.UseCase, bot Sender, cfg SessionConfig) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		sessions: newSessionStore(cfg.Capacity, cfg.TTL),
	}
}
