package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/internal/middleware"
)

// RegisterRoutes maps the command API under rg. Model-backed routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	commands := rg.Group("/commands")
	{
		commands.POST("/voice", mw.RateLimit(), h.Voice)
		commands.POST("/parse", mw.RateLimit(), h.Parse)
		commands.POST("/execute", h.Execute)
	}

	rg.POST("/tasks", h.Tasks)
}
