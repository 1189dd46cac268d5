package command

import (
	"context"

	"voice-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process interprets a transcript with the language model and executes it.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (Output, error)

	// Interpret returns the normalized intent for a transcript without executing it.
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (InterpretOutput, error)

	// Execute applies a parsed intent to the given tasks.
	Execute(ctx context.Context, sc model.Scope, input ExecuteInput) (Output, error)

	// CreateTask adds a task directly, bypassing interpretation.
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (Output, error)

	// Hydrate normalizes a caller snapshot (ids, titles, timestamps) and returns it.
	Hydrate(ctx context.Context, sc model.Scope, tasks []model.Task) ([]model.Task, error)
}
