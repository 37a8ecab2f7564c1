package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		m.editingName = true
		m.nameInput.SetValue(m.cfg.UserName)
		m.nameInput.Focus()
		return m, textinput.Blink
	case "t":
		m.notificationsOn = !m.notificationsOn
		if m.onToggleNotifs != nil {
			m.onToggleNotifs(m.notificationsOn)
		}
	}
	return m, nil
}

func (m Model) updateNameEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
			m.cfg.UserName = name
		}
		m.editingName = false
		m.nameInput.Blur()
		return m, nil
	case "ctrl+c", "esc":
		m.editingName = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) viewSettings() string {
	var b strings.Builder

	b.WriteString("  " + m.st.title.Render("Settings") + "\n\n")

	if m.editingName {
		b.WriteString("  " + m.st.accent.Render("Name:") + " " + m.nameInput.View() + "\n")
		b.WriteString("\n  " + m.st.help.Render("enter save · esc cancel") + "\n")
		return b.String()
	}

	b.WriteString("  " + m.st.dim.Render("Name") + "           " + m.cfg.UserName + "\n")

	notifs := "off"
	if m.notificationsOn {
		notifs = "on"
	}
	b.WriteString("  " + m.st.dim.Render("Notifications") + "  " + m.st.accent.Render(notifs) + "\n")
	b.WriteString("  " + m.st.dim.Render("Config") + "         " + m.configPath + "\n")

	b.WriteString("\n  " + m.st.help.Render("e edit name · t toggle notifications") + "\n")
	return b.String()
}
