package telegram

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-task-management/internal/model"
)

const (
	defaultSessionCapacity = 1000
	defaultSessionTTL      = 24 * time.Hour
)

// sessionStore holds each chat's task snapshot between messages. Commands for
// one chat run one at a time so a snapshot is never read while another
// command for the same chat is still producing its successor.
type sessionStore struct {
	snapshots *expirable.LRU[int64, []model.Task]

	mu    sync.Mutex
	locks map[int64]*chatLock
}

type chatLock struct {
	sync.Mutex
	refs int
}

func newSessionStore(capacity int, ttl time.Duration) *sessionStore {
	if capacity <= 0 {
		capacity = defaultSessionCapacity
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &sessionStore{
		snapshots: expirable.NewLRU[int64, []model.Task](capacity, nil, ttl),
		locks:     make(map[int64]*chatLock),
	}
}

// lock serializes work for chatID. Call the returned func to release.
func (s *sessionStore) lock(chatID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[chatID]
	if !ok {
		l = &chatLock{}
		s.locks[chatID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, chatID)
		}
		s.mu.Unlock()
	}
}

func (s *sessionStore) load(chatID int64) []model.Task {
	tasks, _ := s.snapshots.Get(chatID)
	return tasks
}

func (s *sessionStore) save(chatID int64, tasks []model.Task) {
	s.snapshots.Add(chatID, tasks)
}

func (s *sessionStore) clear(chatID int64) {
	s.snapshots.Remove(chatID)
}
