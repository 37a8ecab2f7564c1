package domain

import (
	"testing"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        string
		wantErr     bool
		errExpected error
	}{
		{
			name: "valid task",
			text: "Buy groceries",
			want: "Buy groceries",
		},
		{
			name:        "empty text",
			text:        "",
			wantErr:     true,
			errExpected: ErrEmptyTaskText,
		},
		{
			name:        "whitespace only",
			text:        "   \t  ",
			wantErr:     true,
			errExpected: ErrEmptyTaskText,
		},
		{
			name: "text with surrounding spaces is trimmed",
			text: "  Go for a run  ",
			want: "Go for a run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.text)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewTask() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errExpected != nil && err != tt.errExpected {
					t.Errorf("NewTask() error = %v, want %v", err, tt.errExpected)
				}
				return
			}

			if err != nil {
				t.Errorf("NewTask() unexpected error = %v", err)
				return
			}

			if task.Text != tt.want {
				t.Errorf("NewTask() text = %q, want %q", task.Text, tt.want)
			}

			if task.Completed {
				t.Error("NewTask() new task should not be completed")
			}

			if task.ID == "" {
				t.Error("NewTask() ID is empty")
			}

			if task.CreatedAt.IsZero() {
				t.Error("NewTask() CreatedAt is zero")
			}
		})
	}
}

func TestTask_Complete(t *testing.T) {
	today := Date("2026-08-28")

	t.Run("scheduled task keeps its own date", func(t *testing.T) {
		task, _ := NewTask("Scheduled")
		task.Date = Date("2026-08-25")

		task.Complete(today)

		if !task.Completed {
			t.Error("Complete() task should be completed")
		}
		if task.CompletionDate != Date("2026-08-25") {
			t.Errorf("Complete() completion date = %v, want 2026-08-25", task.CompletionDate)
		}
	})

	t.Run("unscheduled task falls back to today", func(t *testing.T) {
		task, _ := NewTask("Unscheduled")

		task.Complete(today)

		if task.CompletionDate != today {
			t.Errorf("Complete() completion date = %v, want %v", task.CompletionDate, today)
		}
	})
}

func TestTask_Reopen(t *testing.T) {
	task, _ := NewTask("Reopen me")
	task.Date = Date("2026-08-25")
	task.Complete(Date("2026-08-28"))

	task.Reopen()

	if task.Completed {
		t.Error("Reopen() task should not be completed")
	}
	if !task.CompletionDate.IsZero() {
		t.Errorf("Reopen() completion date = %v, want zero", task.CompletionDate)
	}
}

func TestTask_Toggle(t *testing.T) {
	today := Date("2026-08-28")
	task, _ := NewTask("Toggle me")

	task.Toggle(today)
	if !task.Completed {
		t.Error("Toggle() first toggle should complete the task")
	}

	task.Toggle(today)
	if task.Completed {
		t.Error("Toggle() second toggle should reopen the task")
	}
	if !task.CompletionDate.IsZero() {
		t.Error("Toggle() reopened task should have no completion date")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"Work", CategoryWork},
		{"work", CategoryWork},
		{"  PERSONAL  ", CategoryPersonal},
		{"fitness", CategoryFitness},
		{"", CategoryNone},
		{"chores", CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategories_Order(t *testing.T) {
	want := []Category{CategoryWork, CategoryPersonal, CategoryFitness}
	got := Categories()

	if len(got) != len(want) {
		t.Fatalf("Categories() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
