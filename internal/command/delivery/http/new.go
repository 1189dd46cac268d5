package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/internal/command"
	"voice-task-management/pkg/log"
)

// Handler is the public interface for the command HTTP delivery layer.
type Handler interface {
	Voice(c *gin.Context)
	Parse(c *gin.Context)
	Execute(c *gin.Context)
	Tasks(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc command.UseCase
}

// New creates a new HTTP handler for voice commands.
func New(l log.Logger, uc command.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
