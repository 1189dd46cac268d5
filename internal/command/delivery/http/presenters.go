package http

import (
	"errors"
	"strings"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
)

// --- Request DTOs ---

type taskItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ScheduledTime string    `json:"scheduledTime,omitempty"`
	Priority      string    `json:"priority,omitempty"`
	Category      string    `json:"category,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (t taskItem) toModel() model.Task {
	return model.Task{
		ID:            t.ID,
		Title:         t.Title,
		ScheduledTime: t.ScheduledTime,
		Priority:      model.Priority(t.Priority),
		Category:      t.Category,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toModels(items []taskItem) []model.Task {
	tasks := make([]model.Task, len(items))
	for i, item := range items {
		tasks[i] = item.toModel()
	}
	return tasks
}

type voiceReq struct {
	Transcript   string     `json:"transcript"`
	CurrentTasks []taskItem `json:"currentTasks"`
}

func (r voiceReq) toInput() command.ProcessInput {
	return command.ProcessInput{
		Transcript:   r.Transcript,
		CurrentTasks: toModels(r.CurrentTasks),
	}
}

// ---

type parseReq struct {
	Transcript string `json:"transcript"`
}

func (r parseReq) toInput() command.InterpretInput {
	return command.InterpretInput{Transcript: r.Transcript}
}

// ---

type executeReq struct {
	Intent       model.IntentRecord `json:"intent"`
	CurrentTasks []taskItem         `json:"currentTasks"`
}

var errInvalidTaskIndex = errors.New("intent.taskIndex must be at least 1")

func (r executeReq) validate() error {
	if idx, ok := r.Intent.Index(); ok && idx < 1 {
		return errInvalidTaskIndex
	}
	return nil
}

func (r executeReq) toInput() command.ExecuteInput {
	return command.ExecuteInput{
		Intent:       r.Intent,
		CurrentTasks: toModels(r.CurrentTasks),
	}
}

// ---

// tasksReq either seeds a snapshot (Tasks set) or creates one task.
type tasksReq struct {
	Tasks []taskItem `json:"tasks"`

	Title         string     `json:"title"`
	ScheduledTime string     `json:"scheduledTime"`
	Priority      string     `json:"priority"`
	Category      string     `json:"category"`
	CurrentTasks  []taskItem `json:"currentTasks"`
}

func (r tasksReq) isHydrate() bool {
	return r.Tasks != nil
}

func (r tasksReq) toCreateInput() command.CreateTaskInput {
	return command.CreateTaskInput{
		Title:         strings.TrimSpace(r.Title),
		ScheduledTime: r.ScheduledTime,
		Priority:      model.Priority(r.Priority),
		Category:      r.Category,
		CurrentTasks:  toModels(r.CurrentTasks),
	}
}

// --- Response DTOs ---

func newTaskItem(t model.Task) taskItem {
	return taskItem{
		ID:            t.ID,
		Title:         t.Title,
		ScheduledTime: t.ScheduledTime,
		Priority:      string(t.Priority),
		Category:      t.Category,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func newTaskItems(tasks []model.Task) []taskItem {
	items := make([]taskItem, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskItem(t)
	}
	return items
}

type commandResp struct {
	Success      bool               `json:"success"`
	Intent       model.IntentRecord `json:"intent"`
	Task         *taskItem          `json:"task,omitempty"`
	Tasks        []taskItem         `json:"tasks"`
	Deleted      *bool              `json:"deleted,omitempty"`
	Message      string             `json:"message"`
	CalendarLink string             `json:"calendarLink,omitempty"`
	Snapshot     []taskItem         `json:"snapshot"`
}

func (h *handler) newCommandResp(out command.Output) commandResp {
	resp := commandResp{
		Success:      out.Result.Success,
		Intent:       out.Result.Intent,
		Tasks:        newTaskItems(out.Result.Tasks),
		Deleted:      out.Result.Deleted,
		Message:      out.Result.Message,
		CalendarLink: out.Result.CalendarLink,
		Snapshot:     newTaskItems(out.Snapshot),
	}
	if out.Result.Task != nil {
		item := newTaskItem(*out.Result.Task)
		resp.Task = &item
	}
	return resp
}

type parseResp struct {
	Intent       model.IntentRecord `json:"intent"`
	Provider     string             `json:"provider"`
	Model        string             `json:"model"`
	FinishReason string             `json:"finishReason"`
}

func (h *handler) newParseResp(out command.InterpretOutput) parseResp {
	return parseResp{
		Intent:       out.Intent,
		Provider:     out.Provider,
		Model:        out.Model,
		FinishReason: out.FinishReason,
	}
}

type tasksResp struct {
	Task  *taskItem  `json:"task,omitempty"`
	Tasks []taskItem `json:"tasks"`
}

func (h *handler) newHydrateResp(tasks []model.Task) tasksResp {
	return tasksResp{Tasks: newTaskItems(tasks)}
}

func (h *handler) newCreateResp(out command.Output) tasksResp {
	resp := tasksResp{Tasks: newTaskItems(out.Snapshot)}
	if out.Result.Task != nil {
		item := newTaskItem(*out.Result.Task)
		resp.Task = &item
	}
	return resp
}

// errorData carries failure details next to the message.
func errorData(err error) map[string]interface{} {
	data := map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	}
	if titles := command.AvailableTasksOf(err); titles != nil {
		data["availableTasks"] = titles
	}
	return data
}
