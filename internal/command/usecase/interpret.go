package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/pkg/llmprovider"
)

// Interpret asks the model for an intent and normalizes the reply.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input command.InterpretInput) (command.InterpretOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return command.InterpretOutput{}, command.NewError(command.ErrEmptyTranscript, msgTranscriptRequired)
	}

	uc.l.Debugf(ctx, "command.usecase.Interpret: user=%s channel=%s transcript=%q", sc.UserID, sc.Channel, transcript)

	resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(transcript))
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.Interpret.GenerateContent: %v", err)
		return command.InterpretOutput{}, fmt.Errorf("%w: %v", command.ErrModelUnavailable, err)
	}

	finishErr := finishError(resp.FinishReason)
	if finishErr != nil && resp.FinishReason != llmprovider.FinishMaxTokens {
		uc.l.Warnf(ctx, "command.usecase.Interpret: provider=%s finish=%s", resp.ProviderName, resp.FinishReason)
		return command.InterpretOutput{}, finishErr
	}

	text := resp.Text()
	rec, err := uc.normalize(text)
	if err != nil {
		if finishErr != nil {
			uc.l.Warnf(ctx, "command.usecase.Interpret: truncated response did not parse: %v", err)
			return command.InterpretOutput{}, finishErr
		}
		uc.l.Warnf(ctx, "command.usecase.Interpret.normalize: %v raw=%q", err, text)
		return command.InterpretOutput{}, err
	}
	if finishErr != nil {
		uc.l.Warnf(ctx, "command.usecase.Interpret: response hit max tokens but parsed as %s", rec.Intent)
	}

	return command.InterpretOutput{
		Intent:       rec,
		Provider:     resp.ProviderName,
		Model:        resp.ModelName,
		FinishReason: string(resp.FinishReason),
	}, nil
}

func (uc *implUseCase) buildRequest(transcript string) *llmprovider.Request {
	temperature := uc.temperature
	return &llmprovider.Request{
		SystemInstruction: llmprovider.SystemMessage(systemPrompt),
		Messages:          []llmprovider.Message{llmprovider.UserMessage(fmt.Sprintf(userPromptTemplate, transcript))},
		Temperature:       &temperature,
		MaxTokens:         uc.maxTokens,
		JSONMode:          true,
	}
}

// finishError maps a non-stop finish reason onto a named failure.
func finishError(reason llmprovider.FinishReason) error {
	switch {
	case reason == llmprovider.FinishStop || reason == "":
		return nil
	case reason == llmprovider.FinishMaxTokens:
		return command.NewError(command.ErrResponseTruncated, msgTruncated)
	case reason == llmprovider.FinishSafety || reason == llmprovider.FinishRecitation:
		return command.NewError(command.ErrResponseBlocked, fmt.Sprintf(msgBlocked, reason))
	default:
		return command.NewError(command.ErrUnexpectedFinish, fmt.Sprintf(msgUnexpected, strings.TrimPrefix(string(reason), "other:")))
	}
}
