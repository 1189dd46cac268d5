package command

import "voice-task-management/internal/model"

// ProcessInput runs the full pipeline: interpret the transcript, then execute
// it against a store seeded from CurrentTasks.
type ProcessInput struct {
	Transcript   string
	CurrentTasks []model.Task
}

// InterpretInput turns a transcript into an intent without executing it.
type InterpretInput struct {
	Transcript string
}

// InterpretOutput is the normalized intent plus provenance.
type InterpretOutput struct {
	Intent       model.IntentRecord
	Provider     string
	Model        string
	FinishReason string
}

// ExecuteInput applies an already-parsed intent to CurrentTasks.
type ExecuteInput struct {
	Intent       model.IntentRecord
	CurrentTasks []model.Task
}

// CreateTaskInput adds a task without going through the model.
type CreateTaskInput struct {
	Title         string
	ScheduledTime string
	Priority      model.Priority
	Category      string
	CurrentTasks  []model.Task
}

// Result is the outcome of one executed command. Tasks is the filtered list
// for read/list/filter and the full list otherwise. Deleted is set only for
// delete.
type Result struct {
	Success      bool
	Intent       model.IntentRecord
	Task         *model.Task
	Tasks        []model.Task
	Deleted      *bool
	Message      string
	CalendarLink string
}

// Output is a Result plus the full store contents after the command, which
// the caller persists for the next cycle.
type Output struct {
	Result   Result
	Snapshot []model.Task
}
