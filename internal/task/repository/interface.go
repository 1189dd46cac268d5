package repository

import "voice-task-management/internal/model"

// TaskRepository is an ordered task collection scoped to one command cycle.
// Positions are 1-based and follow the current order, so they shift after a delete.
type TaskRepository interface {
	Create(opt CreateTaskOptions) model.Task
	All() []model.Task
	ByCategory(category string) []model.Task
	ByPriority(priority model.Priority) []model.Task
	Search(query string) []model.Task
	ByID(id string) (model.Task, bool)
	ByIndex(index int) (model.Task, bool)
	Update(id string, opt UpdateTaskOptions) (model.Task, bool)
	DeleteByID(id string) bool
	DeleteByIndex(index int) bool
	Hydrate(snapshot []model.Task)
	Clear()
	Count() int
}

// Factory returns a fresh, empty TaskRepository.
type Factory func() TaskRepository
