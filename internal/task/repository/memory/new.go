package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
	now   func() time.Time
	newID func() string
}

// Option customizes the repository; used by tests to pin time and ids.
type Option func(*implRepository)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// WithIDGenerator overrides the UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(r *implRepository) { r.newID = gen }
}

// New creates an empty in-memory task repository.
func New(opts ...Option) repository.TaskRepository {
	r := &implRepository{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFactory returns a repository.Factory that builds repositories with opts.
func NewFactory(opts ...Option) repository.Factory {
	return func() repository.TaskRepository {
		return New(opts...)
	}
}
