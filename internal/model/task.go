package model

import "time"

// Priority is the urgency level of a Task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned to tasks created without a valid priority.
const DefaultPriority = PriorityMedium

// DefaultTitle replaces an empty title on manual creation.
const DefaultTitle = "Untitled Task"

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is one to-do item. Its position in a store is derived from the store's
// current order and is never kept on the Task itself.
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ScheduledTime string    `json:"scheduledTime,omitempty"`
	Priority      Priority  `json:"priority,omitempty"`
	Category      string    `json:"category,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
