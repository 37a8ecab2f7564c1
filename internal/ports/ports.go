// Package ports defines the interfaces between the Todo core and its
// presentation collaborators, following hexagonal architecture principles.
package ports

import "github.com/SamirAliWebDev/Todo/internal/domain"

// TaskStore is the driving port over the canonical task collection.
// Every call returns the current immutable snapshot, newest-created-first.
// Invalid input (blank text, unknown id) degrades to a silent no-op.
type TaskStore interface {
	// Create adds a task built from the given details and returns the new
	// snapshot. Whitespace-only text leaves the collection unchanged.
	Create(details domain.TaskDetails) []domain.Task

	// Toggle flips the completion state of the task with the given id.
	Toggle(id string) []domain.Task

	// Delete permanently removes the task with the given id.
	Delete(id string) []domain.Task

	// Snapshot returns the current collection without mutating it.
	Snapshot() []domain.Task

	// Get looks up a single task. Returns domain.ErrTaskNotFound when the
	// id is unknown; callers that need hard errors (CLI, MCP) use this
	// before mutating.
	Get(id string) (domain.Task, error)

	// Subscribe registers a callback invoked with the new snapshot after
	// every effective mutation. No-ops do not notify.
	Subscribe(fn func([]domain.Task))
}

// Notifier is the driven port for desktop notifications.
type Notifier interface {
	// NotifyAllDone fires when the day's task list reaches full completion.
	NotifyAllDone(completed int) error

	// IsEnabled reports whether notifications are currently on.
	IsEnabled() bool
}
