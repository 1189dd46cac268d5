package memory

import (
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
)

func (r *implRepository) Create(opt repository.CreateTaskOptions) model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = model.DefaultTitle
	}
	priority := opt.Priority
	if !priority.Valid() {
		priority = model.DefaultPriority
	}

	now := r.now()
	t := model.Task{
		ID:            r.uniqueID(),
		Title:         title,
		ScheduledTime: opt.ScheduledTime,
		Priority:      priority,
		Category:      opt.Category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.tasks = append(r.tasks, t)
	return t
}

func (r *implRepository) All() []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// ByCategory matches categories containing category, ignoring case.
func (r *implRepository) ByCategory(category string) []model.Task {
	needle := strings.ToLower(category)
	return r.filter(func(t model.Task) bool {
		return t.Category != "" && strings.Contains(strings.ToLower(t.Category), needle)
	})
}

func (r *implRepository) ByPriority(priority model.Priority) []model.Task {
	return r.filter(func(t model.Task) bool {
		return t.Priority == priority
	})
}

func (r *implRepository) ByID(id string) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.position(id); i >= 0 {
		return r.tasks[i], true
	}
	return model.Task{}, false
}

func (r *implRepository) ByIndex(index int) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 1 || index > len(r.tasks) {
		return model.Task{}, false
	}
	return r.tasks[index-1], true
}

func (r *implRepository) Update(id string, opt repository.UpdateTaskOptions) (model.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.position(id)
	if i < 0 {
		return model.Task{}, false
	}

	t := r.tasks[i]
	if title := strings.TrimSpace(opt.Title); title != "" {
		t.Title = title
	}
	if opt.ScheduledTime != "" {
		t.ScheduledTime = opt.ScheduledTime
	}
	if opt.Priority.Valid() {
		t.Priority = opt.Priority
	}
	if opt.Category != "" {
		t.Category = opt.Category
	}
	t.UpdatedAt = r.now()

	r.tasks[i] = t
	return t, true
}

func (r *implRepository) DeleteByID(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.position(id)
	if i < 0 {
		return false
	}
	r.remove(i)
	return true
}

func (r *implRepository) DeleteByIndex(index int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 1 || index > len(r.tasks) {
		return false
	}
	r.remove(index - 1)
	return true
}

// Hydrate replaces the contents with snapshot. Entries without an id (or with
// an id already seen earlier in the snapshot) get a fresh one, empty titles get
// model.DefaultTitle and zero timestamps are set to now. Well-formed snapshots
// are stored as given.
func (r *implRepository) Hydrate(snapshot []model.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make([]model.Task, 0, len(snapshot))
	seen := make(map[string]struct{}, len(snapshot))
	now := r.now()

	for _, t := range snapshot {
		if _, dup := seen[t.ID]; t.ID == "" || dup {
			t.ID = r.uniqueIDExcept(seen)
		}
		seen[t.ID] = struct{}{}

		if strings.TrimSpace(t.Title) == "" {
			t.Title = model.DefaultTitle
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = t.CreatedAt
		}
		r.tasks = append(r.tasks, t)
	}
}

func (r *implRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = nil
}

func (r *implRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tasks)
}

func (r *implRepository) filter(keep func(model.Task) bool) []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0)
	for _, t := range r.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// position returns the slice offset of id, or -1. Caller holds the lock.
func (r *implRepository) position(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *implRepository) remove(i int) {
	r.tasks = append(r.tasks[:i:i], r.tasks[i+1:]...)
}

// uniqueID draws ids until one is unused. Caller holds the lock.
func (r *implRepository) uniqueID() string {
	for {
		id := r.newID()
		if r.position(id) < 0 {
			return id
		}
	}
}

func (r *implRepository) uniqueIDExcept(seen map[string]struct{}) string {
	for {
		id := r.newID()
		if _, taken := seen[id]; !taken {
			return id
		}
	}
}
