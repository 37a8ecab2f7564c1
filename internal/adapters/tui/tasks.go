package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/SamirAliWebDev/Todo/internal/domain"
)

// categoryChoices is the add-form cycle: none first, then the closed set
// in declared order.
func categoryChoices() []domain.Category {
	return append([]domain.Category{domain.CategoryNone}, domain.Categories()...)
}

// visibleTasks returns the tasks shown on the tasks screen: the fuzzy
// filter result when a query is active, otherwise incomplete tasks
// followed by completed ones, each group in collection order.
func (m Model) visibleTasks() []domain.Task {
	query := strings.TrimSpace(m.filterInput.Value())
	if query != "" {
		texts := make([]string, len(m.tasks))
		for i, t := range m.tasks {
			texts[i] = t.Text
		}
		var matched []domain.Task
		for _, match := range fuzzy.Find(query, texts) {
			matched = append(matched, m.tasks[match.Index])
		}
		return matched
	}

	var visible []domain.Task
	for _, t := range m.tasks {
		if !t.Completed {
			visible = append(visible, t)
		}
	}
	for _, t := range m.tasks {
		if t.Completed {
			visible = append(visible, t)
		}
	}
	return visible
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case " ", "enter":
		if m.cursor < len(visible) {
			m.refresh(m.store.Toggle(visible[m.cursor].ID))
		}
	case "d", "x":
		if m.cursor < len(visible) {
			m.refresh(m.store.Delete(visible[m.cursor].ID))
		}
	case "a", "n":
		m.adding = true
		m.step = stepText
		m.categoryIdx = 0
		m.textInput.SetValue("")
		m.timeInput.SetValue("")
		m.dateInput.SetValue("")
		m.textInput.Focus()
		return m, textinput.Blink
	case "/":
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, textinput.Blink
	case "esc":
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.cursor = 0
		}
	}

	return m, nil
}

// updateAddForm drives the sequential new-task form: text, category,
// time, date.
func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.adding = false
		m.textInput.Blur()
		m.timeInput.Blur()
		m.dateInput.Blur()
		return m, nil
	}

	switch m.step {
	case stepText:
		if msg.String() == "enter" {
			if strings.TrimSpace(m.textInput.Value()) == "" {
				// Nothing to add; mirror the store's silent rejection.
				m.adding = false
				m.textInput.Blur()
				return m, nil
			}
			m.step = stepCategory
			m.textInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case stepCategory:
		choices := categoryChoices()
		switch msg.String() {
		case "left", "h":
			if m.categoryIdx > 0 {
				m.categoryIdx--
			}
		case "right", "l":
			if m.categoryIdx < len(choices)-1 {
				m.categoryIdx++
			}
		case "enter":
			m.step = stepTime
			m.timeInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case stepTime:
		if msg.String() == "enter" {
			m.step = stepDate
			m.timeInput.Blur()
			m.dateInput.Focus()
			return m, textinput.Blink
		}
		var cmd tea.Cmd
		m.timeInput, cmd = m.timeInput.Update(msg)
		return m, cmd

	case stepDate:
		if msg.String() == "enter" {
			m.submitAddForm()
			return m, nil
		}
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) submitAddForm() {
	details := domain.TaskDetails{
		Text:     m.textInput.Value(),
		Category: categoryChoices()[m.categoryIdx],
		Time:     m.timeInput.Value(),
		Date:     domain.ParseDate(strings.TrimSpace(m.dateInput.Value())),
	}
	m.refresh(m.store.Create(details))

	m.adding = false
	m.dateInput.Blur()
	m.cursor = 0
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		m.cursor = 0
		return m, nil
	case "ctrl+c", "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m Model) viewTasks() string {
	var b strings.Builder

	b.WriteString("  " + m.st.title.Render("Today's Tasks") + "\n")
	b.WriteString("  " + m.st.subtitle.Render(m.now().Format("Monday, January 2")) + "\n\n")

	if m.adding {
		b.WriteString(m.viewAddForm())
		return b.String()
	}

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString("  " + m.st.dim.Render("/") + " " + m.filterInput.View() + "\n\n")
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		if len(m.tasks) == 0 {
			b.WriteString("  " + m.st.dim.Render("No tasks yet") + "\n")
			b.WriteString("  " + m.st.dim.Render("Press ") + m.st.accent.Render("a") + m.st.dim.Render(" to add your first task!") + "\n")
		} else {
			b.WriteString("  " + m.st.dim.Render("No tasks match the filter.") + "\n")
		}
		b.WriteString("\n" + m.taskHelp())
		return b.String()
	}

	doneHeader := false
	for i, t := range visible {
		if t.Completed && !doneHeader && m.filterInput.Value() == "" {
			b.WriteString("\n  " + m.st.dim.Render("Completed") + "\n")
			doneHeader = true
		}
		b.WriteString(m.viewTaskRow(t, i == m.cursor) + "\n")
	}

	b.WriteString("\n" + m.taskHelp())
	return b.String()
}

func (m Model) viewTaskRow(t domain.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.st.cursor.Render("▸ ")
	}

	check := m.st.dim.Render(m.theme.IconCheckempty)
	text := t.Text
	if t.Completed {
		check = m.st.done.Render(m.theme.IconCheckDone)
		text = m.st.doneText.Render(text)
	}

	row := fmt.Sprintf("  %s%s %s", cursor, check, text)
	if badge := m.st.categoryBadge(m.theme, t.Category); badge != "" {
		row += " " + badge
	}
	if t.Time != "" {
		row += " " + m.st.dim.Render(t.Time)
	}
	return row
}

func (m Model) viewAddForm() string {
	var b strings.Builder

	b.WriteString("  " + m.st.title.Render("New Task") + "\n\n")

	switch m.step {
	case stepText:
		b.WriteString("  " + m.st.accent.Render("Task:") + " " + m.textInput.View() + "\n")
	case stepCategory:
		b.WriteString("  " + m.st.accent.Render("Category:") + "  ")
		for i, cat := range categoryChoices() {
			label := string(cat)
			if cat == domain.CategoryNone {
				label = "None"
			}
			if i == m.categoryIdx {
				b.WriteString(m.st.accent.Render(" ▸ "+label+" "))
			} else {
				b.WriteString(m.st.dim.Render("   " + label + " "))
			}
		}
		b.WriteString("\n")
	case stepTime:
		b.WriteString("  " + m.st.accent.Render("Time:") + " " + m.timeInput.View() + "\n")
	case stepDate:
		b.WriteString("  " + m.st.accent.Render("Date:") + " " + m.dateInput.View() + "\n")
	}

	b.WriteString("\n  " + m.st.help.Render("enter next · esc cancel") + "\n")
	return b.String()
}

func (m Model) taskHelp() string {
	return "  " + m.st.help.Render("↑/↓ navigate · space toggle · a add · d delete · / filter")
}
