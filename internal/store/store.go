// Package store implements the in-memory task store: the single canonical
// task collection, owned by the composition root and mutated only through
// Create, Toggle and Delete. Every mutation yields a fresh snapshot, so a
// caller holding an older snapshot keeps observing the pre-mutation state.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/SamirAliWebDev/Todo/internal/domain"
	"github.com/SamirAliWebDev/Todo/internal/ports"
)

// Store holds the canonical task collection for the lifetime of a session.
// There is no persistence: the collection dies with the process.
type Store struct {
	mu          sync.Mutex
	tasks       []domain.Task
	now         func() time.Time
	subscribers []func([]domain.Task)
}

var _ ports.TaskStore = (*Store)(nil)

// New creates an empty store. The clock is injectable so "today" is
// controllable in tests; nil means time.Now.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

// Seed replaces the collection wholesale. Used only to preload demo data
// at startup, before any subscriber is attached.
func (s *Store) Seed(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]domain.Task(nil), tasks...)
}

// Create adds a new task built from the given details and prepends it to
// the collection, so the most recently created task is always first.
// Whitespace-only text is a silent no-op.
func (s *Store) Create(details domain.TaskDetails) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(details.Text)
	if err != nil {
		return s.snapshotLocked()
	}

	task.Category = details.Category
	task.Time = strings.TrimSpace(details.Time)
	task.Date = details.Date
	if task.Date.IsZero() {
		task.Date = domain.DateOf(s.now())
	}

	next := make([]domain.Task, 0, len(s.tasks)+1)
	next = append(next, *task)
	next = append(next, s.tasks...)
	s.tasks = next

	return s.publishLocked()
}

// Toggle flips the completion state of the task with the given id.
// Unknown ids are a silent no-op.
func (s *Store) Toggle(id string) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return s.snapshotLocked()
	}

	next := make([]domain.Task, len(s.tasks))
	copy(next, s.tasks)
	next[idx].Toggle(domain.DateOf(s.now()))
	s.tasks = next

	return s.publishLocked()
}

// Delete permanently removes the task with the given id.
// Unknown ids are a silent no-op.
func (s *Store) Delete(id string) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return s.snapshotLocked()
	}

	next := make([]domain.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)
	s.tasks = next

	return s.publishLocked()
}

// Snapshot returns the current collection, newest-created-first.
func (s *Store) Snapshot() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get looks up a single task by id.
func (s *Store) Get(id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return s.tasks[idx], nil
}

// Subscribe registers a callback invoked with the new snapshot after every
// effective mutation. No-op mutations do not notify.
func (s *Store) Subscribe(fn func([]domain.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []domain.Task {
	snap := make([]domain.Task, len(s.tasks))
	copy(snap, s.tasks)
	return snap
}

func (s *Store) publishLocked() []domain.Task {
	snap := s.snapshotLocked()
	for _, fn := range s.subscribers {
		fn(snap)
	}
	return snap
}
