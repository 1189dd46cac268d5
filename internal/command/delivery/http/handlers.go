package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/pkg/response"
)

// Voice godoc
// @Summary     Process a voice command
// @Description Interprets a transcript with the language model and applies it to the supplied tasks.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body voiceReq true "Transcript and current tasks"
// @Success     200  {object} commandResp
// @Failure     400  {object} response.Resp "Empty transcript, missing field or unknown intent"
// @Failure     404  {object} response.Resp "Referenced task not found"
// @Failure     422  {object} response.Resp "Model reply could not be used"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Language model unavailable"
// @Router      /api/v1/commands/voice [POST]
func (h *handler) Voice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// Parse godoc
// @Summary     Parse a voice command
// @Description Returns the normalized intent for a transcript without executing it.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Transcript"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Empty transcript"
// @Failure     422  {object} response.Resp "Model reply could not be used"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Language model unavailable"
// @Router      /api/v1/commands/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Interpret(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Interpret: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Execute godoc
// @Summary     Execute a parsed command
// @Description Applies an already-parsed intent to the supplied tasks.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Intent and current tasks"
// @Success     200  {object} commandResp
// @Failure     400  {object} response.Resp "Missing field or unknown intent"
// @Failure     404  {object} response.Resp "Referenced task not found"
// @Router      /api/v1/commands/execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Execute(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Execute: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// Tasks godoc
// @Summary     Seed or create tasks
// @Description With "tasks", returns the snapshot as the store holds it. Otherwise creates one task from "title".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Snapshot or new task"
// @Success     200  {object} tasksResp
// @Failure     400  {object} response.Resp "Task title is required"
// @Router      /api/v1/tasks [POST]
func (h *handler) Tasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.isHydrate() {
		tasks, err := h.uc.Hydrate(ctx, h.scope(c), toModels(req.Tasks))
		if err != nil {
			h.l.Errorf(ctx, "uc.Hydrate: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
		response.OK(c, h.newHydrateResp(tasks))
		return
	}

	output, err := h.uc.CreateTask(ctx, h.scope(c), req.toCreateInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}
