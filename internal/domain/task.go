// Package domain contains the core business entities for Todo.
// These entities represent the fundamental concepts of the task list
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskText = errors.New("task text cannot be empty")
	ErrTaskNotFound  = errors.New("task not found")
)

// Category classifies a task. The set is closed: exactly Work, Personal
// and Fitness, plus CategoryNone for uncategorized tasks.
type Category string

const (
	CategoryNone     Category = ""
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryFitness  Category = "Fitness"
)

// Categories returns the closed category set in its declared order.
// Breakdowns and pickers must follow this order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryFitness}
}

// ParseCategory maps a string onto the closed category set.
// Unknown or empty input yields CategoryNone.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work":
		return CategoryWork
	case "personal":
		return CategoryPersonal
	case "fitness":
		return CategoryFitness
	default:
		return CategoryNone
	}
}

// Task represents a single to-do item.
type Task struct {
	ID        string
	Text      string
	Completed bool
	Category  Category
	// Time is a free-form display string such as "08:30 AM". It is never
	// used in any computation.
	Time string
	// Date is the calendar day the task is scheduled for. Zero means
	// unscheduled; unscheduled tasks never appear in date-keyed views.
	Date Date
	// CompletionDate is set when the task becomes completed. It reflects
	// the day the task was scheduled for, not the day it was checked off.
	CompletionDate Date
	CreatedAt      time.Time
}

// TaskDetails carries the caller-supplied fields for task creation.
// Text is required; everything else is optional. A zero Date means
// "schedule for today".
type TaskDetails struct {
	Text     string
	Category Category
	Time     string
	Date     Date
}

// NewTask creates a new task with the given text. The text is trimmed;
// whitespace-only input is rejected with ErrEmptyTaskText.
func NewTask(text string) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTaskText
	}

	return &Task{
		ID:        generateID(),
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// Complete marks the task as completed. The completion date is the task's
// own scheduled date so that weekly views attribute the completion to the
// correct calendar day; unscheduled tasks fall back to today.
func (t *Task) Complete(today Date) {
	t.Completed = true
	if !t.Date.IsZero() {
		t.CompletionDate = t.Date
	} else {
		t.CompletionDate = today
	}
}

// Reopen marks the task as not completed and clears its completion date.
func (t *Task) Reopen() {
	t.Completed = false
	t.CompletionDate = ""
}

// Toggle flips the completion state of the task.
func (t *Task) Toggle(today Date) {
	if t.Completed {
		t.Reopen()
	} else {
		t.Complete(today)
	}
}
