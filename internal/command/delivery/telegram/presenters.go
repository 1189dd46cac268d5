package telegram

import (
	"fmt"
	"strings"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
)

const (
	startText = "Hi! Send me a task command in plain words and I will keep your list.\n\n" +
		"Examples:\n" +
		"- Make a task to buy milk tomorrow\n" +
		"- Show admin tasks\n" +
		"- Push the compliance task to next friday\n" +
		"- Delete the 2nd task\n\n" +
		"Type /help for all commands."
	helpText = "Commands:\n" +
		"/list - show your tasks\n" +
		"/clear - forget all tasks\n" +
		"/help - this message\n\n" +
		"Anything else is read as a task command: create, show, filter, update or delete tasks by position (\"the 3rd task\") or by name (\"the task about taxes\")."
	clearedText     = "All tasks cleared."
	voiceNotice     = "Voice notes are not transcribed here. Please send the command as text."
	emptyListText   = "You have no tasks yet."
	genericFailText = "Something went wrong while handling your command. Please try again."
)

// formatResult renders a command outcome followed by the tasks it concerns.
func formatResult(res command.Result, snapshot []model.Task) string {
	var b strings.Builder
	b.WriteString(res.Message)

	if res.CalendarLink != "" {
		fmt.Fprintf(&b, "\nCalendar: %s", res.CalendarLink)
	}

	switch res.Intent.Intent {
	case model.IntentRead, model.IntentList, model.IntentFilter:
		if len(res.Tasks) > 0 {
			b.WriteString("\n\n")
			b.WriteString(formatTasks(res.Tasks))
		}
	default:
		b.WriteString("\n\n")
		b.WriteString(formatTaskList(snapshot))
	}
	return b.String()
}

// formatTaskList renders the full list or a placeholder when it is empty.
func formatTaskList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return emptyListText
	}
	return "Your tasks:\n" + formatTasks(tasks)
}

func formatTasks(tasks []model.Task) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, t.Title)

		var details []string
		if t.Priority != "" && t.Priority != model.DefaultPriority {
			details = append(details, string(t.Priority))
		}
		if t.Category != "" {
			details = append(details, t.Category)
		}
		if t.ScheduledTime != "" {
			details = append(details, t.ScheduledTime)
		}
		if len(details) > 0 {
			line += " (" + strings.Join(details, ", ") + ")"
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
