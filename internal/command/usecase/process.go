package usecase

import (
	"context"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
)

func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input command.ProcessInput) (command.Output, error) {
	interpreted, err := uc.Interpret(ctx, sc, command.InterpretInput{Transcript: input.Transcript})
	if err != nil {
		uc.metrics.RecordCommand("", err)
		return command.Output{}, err
	}

	return uc.Execute(ctx, sc, command.ExecuteInput{
		Intent:       interpreted.Intent,
		CurrentTasks: input.CurrentTasks,
	})
}

// Execute runs the intent against a fresh store seeded from the caller's
// tasks. The store is discarded afterwards; the snapshot carries its state.
// Intents from outside the model path get the same scheduledTime resolution.
func (uc *implUseCase) Execute(ctx context.Context, sc model.Scope, input command.ExecuteInput) (command.Output, error) {
	input.Intent = uc.resolveSchedule(input.Intent)
	store := uc.seed(input.CurrentTasks)

	result, err := uc.execute(ctx, store, input.Intent)
	uc.metrics.RecordCommand(intentLabel(input.Intent.Intent), err)
	if err != nil {
		uc.l.Warnf(ctx, "command.usecase.Execute: user=%s intent=%s: %v", sc.UserID, input.Intent.Intent, err)
		return command.Output{}, err
	}

	snapshot := store.All()
	uc.metrics.ObserveStoreSize(len(snapshot))
	uc.l.Infof(ctx, "command.usecase.Execute: user=%s channel=%s intent=%s tasks=%d", sc.UserID, sc.Channel, input.Intent.Intent, len(snapshot))

	return command.Output{Result: result, Snapshot: snapshot}, nil
}

func (uc *implUseCase) seed(tasks []model.Task) repository.TaskRepository {
	store := uc.newRepo()
	store.Hydrate(tasks)
	return store
}

// intentLabel keeps arbitrary model output out of metric labels.
func intentLabel(intent model.Intent) string {
	switch intent {
	case model.IntentCreate, model.IntentRead, model.IntentUpdate,
		model.IntentDelete, model.IntentList, model.IntentFilter:
		return string(intent)
	default:
		return ""
	}
}
