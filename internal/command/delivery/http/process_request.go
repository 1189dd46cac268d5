package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/internal/model"
)

// HeaderUserID lets clients name the user a command is for. The client IP is used otherwise.
const HeaderUserID = "X-User-ID"

func (h *handler) scope(c *gin.Context) model.Scope {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		userID = c.ClientIP()
	}
	return model.Scope{UserID: userID, Channel: model.ChannelHTTP}
}

func (h *handler) processVoiceReq(c *gin.Context) (voiceReq, error) {
	var req voiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processTasksReq(c *gin.Context) (tasksReq, error) {
	var req tasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
