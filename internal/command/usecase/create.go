package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
)

// CreateTask adds a task typed in by the user.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input command.CreateTaskInput) (command.Output, error) {
	if strings.TrimSpace(input.Title) == "" {
		uc.metrics.RecordCommand(string(model.IntentCreate), command.ErrMissingField)
		return command.Output{}, command.NewError(command.ErrMissingField, msgManualTitleRequired)
	}

	store := uc.seed(input.CurrentTasks)

	task := store.Create(repository.CreateTaskOptions{
		Title:         input.Title,
		ScheduledTime: input.ScheduledTime,
		Priority:      input.Priority,
		Category:      input.Category,
	})
	uc.metrics.RecordCommand(string(model.IntentCreate), nil)

	snapshot := store.All()
	uc.metrics.ObserveStoreSize(len(snapshot))
	uc.l.Infof(ctx, "command.usecase.CreateTask: user=%s id=%s", sc.UserID, task.ID)

	return command.Output{
		Result: command.Result{
			Success: true,
			Intent: model.IntentRecord{
				Intent:        model.IntentCreate,
				TaskTitle:     task.Title,
				Category:      task.Category,
				Priority:      task.Priority,
				ScheduledTime: task.ScheduledTime,
			},
			Task:         &task,
			Tasks:        snapshot,
			Message:      fmt.Sprintf(msgCreated, task.Title),
			CalendarLink: uc.schedule(ctx, task),
		},
		Snapshot: snapshot,
	}, nil
}

// Hydrate returns the caller's tasks as the store would hold them.
func (uc *implUseCase) Hydrate(ctx context.Context, sc model.Scope, tasks []model.Task) ([]model.Task, error) {
	return uc.seed(tasks).All(), nil
}
