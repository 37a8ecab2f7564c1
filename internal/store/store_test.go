package store

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamirAliWebDev/Todo/internal/domain"
)

// fixedClock pins "today" to 2026-08-28, a Friday.
func fixedClock() time.Time {
	return time.Date(2026, time.August, 28, 9, 0, 0, 0, time.Local)
}

func TestStore_Create(t *testing.T) {
	s := New(fixedClock)

	snapshot := s.Create(domain.TaskDetails{Text: "  Write the report  ", Category: domain.CategoryWork, Time: " 10:30 AM "})

	require.Len(t, snapshot, 1)
	task := snapshot[0]
	assert.Equal(t, "Write the report", task.Text)
	assert.Equal(t, domain.CategoryWork, task.Category)
	assert.Equal(t, "10:30 AM", task.Time)
	assert.Equal(t, domain.Date("2026-08-28"), task.Date, "zero date should default to today")
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)
}

func TestStore_Create_PrependsNewest(t *testing.T) {
	s := New(fixedClock)

	s.Create(domain.TaskDetails{Text: "first"})
	s.Create(domain.TaskDetails{Text: "second"})
	snapshot := s.Create(domain.TaskDetails{Text: "third"})

	require.Len(t, snapshot, 3)
	assert.Equal(t, "third", snapshot[0].Text)
	assert.Equal(t, "second", snapshot[1].Text)
	assert.Equal(t, "first", snapshot[2].Text)
}

func TestStore_Create_BlankTextIsNoOp(t *testing.T) {
	s := New(fixedClock)
	s.Create(domain.TaskDetails{Text: "keep me"})

	var notified int
	s.Subscribe(func([]domain.Task) { notified++ })

	snapshot := s.Create(domain.TaskDetails{Text: "   "})

	assert.Len(t, snapshot, 1)
	assert.Zero(t, notified, "no-op creation must not notify subscribers")
}

func TestStore_Create_ExplicitDateKept(t *testing.T) {
	s := New(fixedClock)

	snapshot := s.Create(domain.TaskDetails{Text: "scheduled", Date: domain.Date("2026-09-01")})

	require.Len(t, snapshot, 1)
	assert.Equal(t, domain.Date("2026-09-01"), snapshot[0].Date)
}

func TestStore_Toggle(t *testing.T) {
	s := New(fixedClock)
	snapshot := s.Create(domain.TaskDetails{Text: "toggle me", Date: domain.Date("2026-08-25")})
	id := snapshot[0].ID

	snapshot = s.Toggle(id)
	require.Len(t, snapshot, 1)
	assert.True(t, snapshot[0].Completed)
	assert.Equal(t, domain.Date("2026-08-25"), snapshot[0].CompletionDate,
		"completion is attributed to the scheduled day")

	snapshot = s.Toggle(id)
	assert.False(t, snapshot[0].Completed)
	assert.True(t, snapshot[0].CompletionDate.IsZero(), "reopening clears the completion date")
}

func TestStore_Toggle_UnknownIDIsNoOp(t *testing.T) {
	s := New(fixedClock)
	s.Create(domain.TaskDetails{Text: "only task"})

	var notified int
	s.Subscribe(func([]domain.Task) { notified++ })

	snapshot := s.Toggle("does-not-exist")

	require.Len(t, snapshot, 1)
	assert.False(t, snapshot[0].Completed)
	assert.Zero(t, notified)
}

func TestStore_Delete(t *testing.T) {
	s := New(fixedClock)
	s.Create(domain.TaskDetails{Text: "keep"})
	snapshot := s.Create(domain.TaskDetails{Text: "remove"})
	id := snapshot[0].ID

	snapshot = s.Delete(id)

	require.Len(t, snapshot, 1)
	assert.Equal(t, "keep", snapshot[0].Text)

	_, err := s.Get(id)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestStore_Delete_UnknownIDIsNoOp(t *testing.T) {
	s := New(fixedClock)
	s.Create(domain.TaskDetails{Text: "survivor"})

	snapshot := s.Delete("does-not-exist")

	assert.Len(t, snapshot, 1)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := New(fixedClock)
	snapshot := s.Create(domain.TaskDetails{Text: "original"})
	before := s.Snapshot()

	s.Toggle(snapshot[0].ID)

	assert.False(t, before[0].Completed, "older snapshots must not observe later mutations")
	assert.True(t, s.Snapshot()[0].Completed)
}

func TestStore_Subscribe(t *testing.T) {
	s := New(fixedClock)

	var got [][]domain.Task
	s.Subscribe(func(tasks []domain.Task) { got = append(got, tasks) })

	snapshot := s.Create(domain.TaskDetails{Text: "watched"})
	s.Toggle(snapshot[0].ID)
	s.Delete(snapshot[0].ID)

	require.Len(t, got, 3)
	assert.Len(t, got[0], 1)
	assert.True(t, got[1][0].Completed)
	assert.Empty(t, got[2])
}

func TestStore_IDsSortWithCreationOrder(t *testing.T) {
	s := New(fixedClock)
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		s.Create(domain.TaskDetails{Text: text})
	}

	snapshot := s.Snapshot()
	ids := make([]string, len(snapshot))
	// Snapshot is newest-first; reverse into creation order.
	for i, task := range snapshot {
		ids[len(ids)-1-i] = task.ID
	}

	assert.True(t, sort.StringsAreSorted(ids), "ids must sort in creation order")
}

func TestStore_Seed(t *testing.T) {
	s := New(fixedClock)
	task, err := domain.NewTask("preloaded")
	require.NoError(t, err)

	s.Seed([]domain.Task{*task})

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "preloaded", snapshot[0].Text)
}
