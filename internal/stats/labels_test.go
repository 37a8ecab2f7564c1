package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SamirAliWebDev/Todo/internal/domain"
)

func TestProgressTitle(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		want string
	}{
		{"empty collection", Progress{}, "Ready for a new day!"},
		{"all done", Progress{Completed: 4, Total: 4, Percentage: 100}, "Awesome! All done!"},
		{"three quarters", Progress{Completed: 3, Total: 4, Percentage: 75}, "Almost there!"},
		{"just under the top band", Progress{Completed: 74, Total: 100, Percentage: 74}, "Keep up the momentum!"},
		{"one quarter", Progress{Completed: 1, Total: 4, Percentage: 25}, "Keep up the momentum!"},
		{"barely started", Progress{Completed: 1, Total: 10, Percentage: 10}, "Getting started!"},
		{"nothing done yet", Progress{Completed: 0, Total: 4, Percentage: 0}, "Let's get started!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressTitle(tt.p))
		})
	}
}

func TestSummarize(t *testing.T) {
	mk := func(completed, total int) []domain.Task {
		var tasks []domain.Task
		for i := 0; i < total; i++ {
			tasks = append(tasks, mkTask("task", i < completed, "", domain.CategoryNone))
		}
		return tasks
	}

	t.Run("empty collection", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, "Nothing yet", s.CompletedLabel)
		assert.Equal(t, "Add a task", s.ActiveLabel)
		assert.Equal(t, "Set a goal", s.RateLabel)
	})

	t.Run("nothing done", func(t *testing.T) {
		s := Summarize(mk(0, 3))
		assert.Equal(t, 3, s.Active)
		assert.Equal(t, "Let's start!", s.CompletedLabel)
		assert.Equal(t, "Still to do", s.ActiveLabel)
		assert.Equal(t, "Start crushing it", s.RateLabel)
	})

	t.Run("half done", func(t *testing.T) {
		s := Summarize(mk(2, 4))
		assert.Equal(t, "Almost there!", s.CompletedLabel)
		assert.Equal(t, "Still to do", s.ActiveLabel)
		assert.Equal(t, "On a roll!", s.RateLabel)
	})

	t.Run("one left", func(t *testing.T) {
		s := Summarize(mk(3, 4))
		assert.Equal(t, 1, s.Active)
		assert.Equal(t, "One left", s.ActiveLabel)
		assert.Equal(t, "On a roll!", s.RateLabel)
	})

	t.Run("all done", func(t *testing.T) {
		s := Summarize(mk(4, 4))
		assert.Equal(t, "All clear!", s.CompletedLabel)
		assert.Equal(t, "Well done!", s.ActiveLabel)
		assert.Equal(t, "Perfection!", s.RateLabel)
	})

	t.Run("under half", func(t *testing.T) {
		s := Summarize(mk(1, 4))
		assert.Equal(t, "Getting started", s.CompletedLabel)
		assert.Equal(t, "Good progress", s.RateLabel)
	})
}
