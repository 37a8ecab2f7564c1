// Package stats implements the statistics engine: pure projections over
// the current task collection. Every value here is derivable from
// (tasks, today) alone; nothing holds state and nothing fails. Malformed
// dates simply drop out of date-keyed views.
package stats

import (
	"math"
	"time"

	"github.com/SamirAliWebDev/Todo/internal/domain"
)

// Progress is the day's completion summary.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// DailyProgress computes the completion summary over the whole collection.
// Percentage is rounded; an empty collection yields 0, never an error.
func DailyProgress(tasks []domain.Task) Progress {
	p := Progress{Total: len(tasks)}
	for i := range tasks {
		if tasks[i].Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

// UpcomingTasks returns the first limit incomplete tasks in collection
// order, i.e. most-recently-created-first. A pure filter and truncate.
func UpcomingTasks(tasks []domain.Task, limit int) []domain.Task {
	var upcoming []domain.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		upcoming = append(upcoming, t)
		if len(upcoming) == limit {
			break
		}
	}
	return upcoming
}

// DayCount accumulates per-day task totals.
type DayCount struct {
	Total     int
	Completed int
}

// GroupByDate buckets tasks by their scheduled calendar date. Tasks with
// an absent or malformed date are excluded entirely.
func GroupByDate(tasks []domain.Task) map[domain.Date]DayCount {
	byDate := make(map[domain.Date]DayCount)
	for _, t := range tasks {
		if t.Date.IsZero() || !t.Date.Valid() {
			continue
		}
		c := byDate[t.Date]
		c.Total++
		if t.Completed {
			c.Completed++
		}
		byDate[t.Date] = c
	}
	return byDate
}

// FullyCompletedDates returns the set of dates on which every scheduled
// task is completed. All-or-nothing: a day with zero tasks is never fully
// completed, and a single incomplete task disqualifies the whole day.
func FullyCompletedDates(tasks []domain.Task) map[domain.Date]bool {
	done := make(map[domain.Date]bool)
	for date, c := range GroupByDate(tasks) {
		if c.Total > 0 && c.Total == c.Completed {
			done[date] = true
		}
	}
	return done
}

// WeekDay is one entry of the weekly activity calendar.
type WeekDay struct {
	Date      domain.Date
	DayNumber int
	IsToday   bool
	Active    bool
}

// WeeklyActivity produces the Monday–Sunday week containing today as seven
// consecutive entries. Exactly one entry carries IsToday; Active marks days
// that are fully completed.
func WeeklyActivity(tasks []domain.Task, today time.Time) []WeekDay {
	diff := 1 - int(today.Weekday())
	if today.Weekday() == time.Sunday {
		diff = -6
	}
	start := today.AddDate(0, 0, diff)

	done := FullyCompletedDates(tasks)
	todayDate := domain.DateOf(today)

	week := make([]WeekDay, 7)
	for i := range week {
		d := domain.DateOf(start.AddDate(0, 0, i))
		week[i] = WeekDay{
			Date:      d,
			DayNumber: d.Day(),
			IsToday:   d == todayDate,
			Active:    done[d],
		}
	}
	return week
}

// CategoryProgress is the per-category completion summary.
type CategoryProgress struct {
	Category   domain.Category
	Completed  int
	Total      int
	Percentage int
}

// CategoryBreakdown summarizes completion for each category in declared
// order. Categories with no tasks are omitted; uncategorized tasks are
// never counted.
func CategoryBreakdown(tasks []domain.Task) []CategoryProgress {
	counts := make(map[domain.Category]DayCount)
	for _, t := range tasks {
		if t.Category == domain.CategoryNone {
			continue
		}
		c := counts[t.Category]
		c.Total++
		if t.Completed {
			c.Completed++
		}
		counts[t.Category] = c
	}

	var breakdown []CategoryProgress
	for _, cat := range domain.Categories() {
		c, ok := counts[cat]
		if !ok {
			continue
		}
		breakdown = append(breakdown, CategoryProgress{
			Category:   cat,
			Completed:  c.Completed,
			Total:      c.Total,
			Percentage: int(math.Round(float64(c.Completed) / float64(c.Total) * 100)),
		})
	}
	return breakdown
}

// DayTasks partitions one day's tasks by completion state, each sub-list
// preserving collection order.
type DayTasks struct {
	Incomplete []domain.Task
	Completed  []domain.Task
}

// TasksForDate selects the tasks scheduled exactly on the given date.
func TasksForDate(tasks []domain.Task, date domain.Date) DayTasks {
	var day DayTasks
	for _, t := range tasks {
		if t.Date != date {
			continue
		}
		if t.Completed {
			day.Completed = append(day.Completed, t)
		} else {
			day.Incomplete = append(day.Incomplete, t)
		}
	}
	return day
}
