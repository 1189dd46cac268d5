package telegram

import (
	"errors"
	"fmt"
	"strings"

	"voice-task-management/internal/command"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var cmdErr *command.Error
	switch {
	case errors.Is(err, command.ErrTaskNotFound):
		titles := command.AvailableTasksOf(err)
		if len(titles) == 0 {
			return "I could not find that task, and your list is empty."
		}
		return "I could not find that task. Your tasks:\n" + numbered(titles)
	case errors.Is(err, command.ErrMalformedResponse):
		return "Sorry, I did not understand that. Try rephrasing the command."
	case errors.Is(err, command.ErrModelUnavailable):
		return "The assistant is unavailable right now. Please try again in a moment."
	case errors.As(err, &cmdErr):
		return cmdErr.Error()
	default:
		return genericFailText
	}
}

func numbered(titles []string) string {
	lines := make([]string, len(titles))
	for i, title := range titles {
		lines[i] = fmt.Sprintf("%d. %s", i+1, title)
	}
	return strings.Join(lines, "\n")
}
