package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
)

// listSelector narrows the task list by one intent field. ok is false when
// the field is absent, so the next selector gets a turn.
type listSelector func(store repository.TaskRepository, rec model.IntentRecord) (tasks []model.Task, message string, ok bool)

// reference locates the task an update or delete points at. present is false
// when the intent does not carry this kind of reference.
type reference struct {
	present  func(rec model.IntentRecord) bool
	resolve  func(store repository.TaskRepository, rec model.IntentRecord) (model.Task, bool)
	notFound func(store repository.TaskRepository, rec model.IntentRecord) *command.Error
}

// Selection order per intent. The first selector whose field is present wins.
var (
	readSelectors   = []listSelector{selectByCategory, selectByPriority}
	filterSelectors = []listSelector{selectByCategory, selectBySearch, selectByPriority}

	updateReferences = []reference{indexReference, searchReference, idReference}
	deleteReferences = []reference{indexReference, searchReference}
)

func (uc *implUseCase) execute(ctx context.Context, store repository.TaskRepository, rec model.IntentRecord) (command.Result, error) {
	switch rec.Intent {
	case model.IntentCreate:
		return uc.executeCreate(ctx, store, rec)
	case model.IntentRead, model.IntentList:
		return uc.executeSelect(store, rec, readSelectors), nil
	case model.IntentFilter:
		return uc.executeSelect(store, rec, filterSelectors), nil
	case model.IntentUpdate:
		return uc.executeUpdate(ctx, store, rec)
	case model.IntentDelete:
		return uc.executeDelete(store, rec)
	default:
		return command.Result{}, command.NewError(command.ErrUnknownIntent, fmt.Sprintf(msgUnknownIntent, rec.Intent))
	}
}

func (uc *implUseCase) executeCreate(ctx context.Context, store repository.TaskRepository, rec model.IntentRecord) (command.Result, error) {
	if strings.TrimSpace(rec.TaskTitle) == "" {
		return command.Result{}, command.NewError(command.ErrMissingField, msgTitleRequired)
	}

	task := store.Create(repository.CreateTaskOptions{
		Title:         rec.TaskTitle,
		ScheduledTime: rec.ScheduledTime,
		Priority:      rec.Priority,
		Category:      rec.Category,
	})

	return command.Result{
		Success:      true,
		Intent:       rec,
		Task:         &task,
		Tasks:        store.All(),
		Message:      fmt.Sprintf(msgCreated, task.Title),
		CalendarLink: uc.schedule(ctx, task),
	}, nil
}

func (uc *implUseCase) executeSelect(store repository.TaskRepository, rec model.IntentRecord, selectors []listSelector) command.Result {
	tasks, message := selectTasks(store, rec, selectors)
	return command.Result{
		Success: true,
		Intent:  rec,
		Tasks:   tasks,
		Message: message,
	}
}

func selectTasks(store repository.TaskRepository, rec model.IntentRecord, selectors []listSelector) ([]model.Task, string) {
	for _, sel := range selectors {
		if tasks, message, ok := sel(store, rec); ok {
			return tasks, message
		}
	}
	all := store.All()
	return all, fmt.Sprintf(msgFoundAll, len(all))
}

func (uc *implUseCase) executeUpdate(ctx context.Context, store repository.TaskRepository, rec model.IntentRecord) (command.Result, error) {
	ref, ok := firstPresent(updateReferences, rec)
	if !ok {
		return command.Result{}, taskNotFound(store, fmt.Sprintf(msgNotFound, availableList(store)))
	}

	target, found := ref.resolve(store, rec)
	if !found {
		return command.Result{}, ref.notFound(store, rec)
	}

	updated, ok := store.Update(target.ID, repository.UpdateTaskOptions{
		Title:         rec.TaskTitle,
		ScheduledTime: rec.ScheduledTime,
		Priority:      rec.Priority,
		Category:      rec.Category,
	})
	if !ok {
		return command.Result{}, taskNotFound(store, fmt.Sprintf(msgNotFound, availableList(store)))
	}

	var link string
	if rec.ScheduledTime != "" {
		link = uc.schedule(ctx, updated)
	}

	return command.Result{
		Success:      true,
		Intent:       rec,
		Task:         &updated,
		Tasks:        store.All(),
		Message:      fmt.Sprintf(msgUpdated, updated.Title),
		CalendarLink: link,
	}, nil
}

func (uc *implUseCase) executeDelete(store repository.TaskRepository, rec model.IntentRecord) (command.Result, error) {
	ref, ok := firstPresent(deleteReferences, rec)
	if !ok {
		return command.Result{}, command.NewError(command.ErrMissingField, msgDeleteRefRequired)
	}

	var (
		deleted bool
		message string
	)
	if idx, byIndex := rec.Index(); byIndex {
		deleted = store.DeleteByIndex(idx)
		message = fmt.Sprintf(msgIndexNotFound, idx)
		if deleted {
			message = fmt.Sprintf(msgDeletedAtIndex, idx)
		}
	} else {
		message = fmt.Sprintf(msgNoMatches, rec.SearchQuery)
		if target, found := ref.resolve(store, rec); found {
			deleted = store.DeleteByID(target.ID)
			message = fmt.Sprintf(msgDeletedTask, target.Title)
		}
	}

	return command.Result{
		Success: true,
		Intent:  rec,
		Tasks:   store.All(),
		Deleted: &deleted,
		Message: message,
	}, nil
}

func firstPresent(refs []reference, rec model.IntentRecord) (reference, bool) {
	for _, ref := range refs {
		if ref.present(rec) {
			return ref, true
		}
	}
	return reference{}, false
}

func selectByCategory(store repository.TaskRepository, rec model.IntentRecord) ([]model.Task, string, bool) {
	if rec.Category == "" {
		return nil, "", false
	}
	tasks := store.ByCategory(rec.Category)
	return tasks, fmt.Sprintf(msgFoundCategory, len(tasks), rec.Category), true
}

func selectByPriority(store repository.TaskRepository, rec model.IntentRecord) ([]model.Task, string, bool) {
	if rec.Priority == "" {
		return nil, "", false
	}
	tasks := store.ByPriority(rec.Priority)
	return tasks, fmt.Sprintf(msgFoundPriority, len(tasks), rec.Priority), true
}

func selectBySearch(store repository.TaskRepository, rec model.IntentRecord) ([]model.Task, string, bool) {
	if rec.SearchQuery == "" {
		return nil, "", false
	}
	tasks := store.Search(rec.SearchQuery)
	return tasks, fmt.Sprintf(msgFoundQuery, len(tasks), rec.SearchQuery), true
}

var indexReference = reference{
	present: func(rec model.IntentRecord) bool {
		_, ok := rec.Index()
		return ok
	},
	resolve: func(store repository.TaskRepository, rec model.IntentRecord) (model.Task, bool) {
		idx, _ := rec.Index()
		return store.ByIndex(idx)
	},
	notFound: func(store repository.TaskRepository, _ model.IntentRecord) *command.Error {
		return taskNotFound(store, fmt.Sprintf(msgNotFound, availableList(store)))
	},
}

var searchReference = reference{
	present: func(rec model.IntentRecord) bool { return rec.SearchQuery != "" },
	resolve: func(store repository.TaskRepository, rec model.IntentRecord) (model.Task, bool) {
		matches := store.Search(rec.SearchQuery)
		if len(matches) == 0 {
			return model.Task{}, false
		}
		return matches[0], true
	},
	notFound: func(store repository.TaskRepository, rec model.IntentRecord) *command.Error {
		return taskNotFound(store, fmt.Sprintf(msgNotFoundMatches, rec.SearchQuery, availableList(store)))
	},
}

var idReference = reference{
	present: func(rec model.IntentRecord) bool { return rec.TaskID != "" },
	resolve: func(store repository.TaskRepository, rec model.IntentRecord) (model.Task, bool) {
		return store.ByID(rec.TaskID)
	},
	notFound: func(store repository.TaskRepository, _ model.IntentRecord) *command.Error {
		return taskNotFound(store, fmt.Sprintf(msgNotFound, availableList(store)))
	},
}

func taskNotFound(store repository.TaskRepository, message string) *command.Error {
	err := command.NewError(command.ErrTaskNotFound, message)
	err.AvailableTasks = titlesOf(store.All())
	return err
}

// availableList renders titles as #1: "a", #2: "b".
func availableList(store repository.TaskRepository) string {
	titles := titlesOf(store.All())
	if len(titles) == 0 {
		return "none"
	}
	parts := make([]string, len(titles))
	for i, t := range titles {
		parts[i] = fmt.Sprintf("#%d: %q", i+1, t)
	}
	return strings.Join(parts, ", ")
}

func titlesOf(tasks []model.Task) []string {
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return titles
}
