package repository

import "voice-task-management/internal/model"

// CreateTaskOptions holds the fields of a new task. Empty Title becomes
// model.DefaultTitle; an invalid Priority becomes model.DefaultPriority.
type CreateTaskOptions struct {
	Title         string
	ScheduledTime string
	Priority      model.Priority
	Category      string
}

// UpdateTaskOptions holds a partial update. Empty fields (and an invalid
// Priority) leave the stored value untouched.
type UpdateTaskOptions struct {
	Title         string
	ScheduledTime string
	Priority      model.Priority
	Category      string
}

// IsEmpty reports whether the update would change nothing.
func (o UpdateTaskOptions) IsEmpty() bool {
	return o.Title == "" && o.ScheduledTime == "" && !o.Priority.Valid() && o.Category == ""
}
