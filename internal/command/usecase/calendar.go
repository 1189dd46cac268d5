package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/pkg/gcalendar"
)

var calendarDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// schedule mirrors a dated task onto the calendar. Failures are logged and
// leave the command result untouched.
func (uc *implUseCase) schedule(ctx context.Context, task model.Task) string {
	if uc.calendar == nil || !calendarDate.MatchString(task.ScheduledTime) {
		return ""
	}

	event, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     task.Title,
		Description: eventDescription(task),
		Date:        task.ScheduledTime,
	})
	if err != nil {
		uc.l.Warnf(ctx, "command.usecase.schedule: task=%s: %v", task.ID, err)
		return ""
	}
	return event.HtmlLink
}

func eventDescription(task model.Task) string {
	parts := []string{fmt.Sprintf("Priority: %s", task.Priority)}
	if task.Category != "" {
		parts = append(parts, fmt.Sprintf("Category: %s", task.Category))
	}
	return strings.Join(parts, "\n")
}
