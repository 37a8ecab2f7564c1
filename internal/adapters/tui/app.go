// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/SamirAliWebDev/Todo/internal/config"
	"github.com/SamirAliWebDev/Todo/internal/domain"
	"github.com/SamirAliWebDev/Todo/internal/ports"
)

// screen identifies one of the four app screens behind the tab bar.
type screen int

const (
	screenHome screen = iota
	screenTasks
	screenTracker
	screenSettings
)

var screenNames = []string{"Home", "Tasks", "Tracker", "Settings"}

// addStep tracks progress through the sequential add-task form.
type addStep int

const (
	stepText addStep = iota
	stepCategory
	stepTime
	stepDate
)

// Model represents the TUI state.
type Model struct {
	store ports.TaskStore
	cfg   *config.Config
	theme config.ThemeConfig
	st    styles
	now   func() time.Time

	tasks  []domain.Task
	screen screen
	width  int
	height int

	// Tasks screen
	cursor      int
	adding      bool
	step        addStep
	textInput   textinput.Model
	timeInput   textinput.Model
	dateInput   textinput.Model
	categoryIdx int // 0 = none, then declared category order
	filtering   bool
	filterInput textinput.Model

	// Home screen
	bar progress.Model

	// Settings screen
	editingName     bool
	nameInput       textinput.Model
	onToggleNotifs  func(bool)
	notificationsOn bool
	configPath      string
}

// NewModel creates the app model bound to the given store.
func NewModel(store ports.TaskStore, cfg *config.Config, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	theme := resolveTheme(&cfg.Theme)

	text := textinput.New()
	text.Placeholder = "e.g., Learn Go"
	text.CharLimit = 120
	text.Width = 40

	timeIn := textinput.New()
	timeIn.Placeholder = "e.g., 10:30 AM (enter to skip)"
	timeIn.CharLimit = 20
	timeIn.Width = 30

	dateIn := textinput.New()
	dateIn.Placeholder = "YYYY-MM-DD (enter for today)"
	dateIn.CharLimit = 10
	dateIn.Width = 30

	filter := textinput.New()
	filter.Placeholder = "filter tasks"
	filter.CharLimit = 60
	filter.Width = 30

	name := textinput.New()
	name.CharLimit = 40
	name.Width = 30

	bar := progress.New(progress.WithScaledGradient(theme.ColorAccent, theme.ColorDone))

	configPath, _ := config.GetConfigPath()

	return Model{
		store:           store,
		cfg:             cfg,
		theme:           theme,
		st:              newStyles(theme),
		now:             now,
		tasks:           store.Snapshot(),
		screen:          screenHome,
		textInput:       text,
		timeInput:       timeIn,
		dateInput:       dateIn,
		filterInput:     filter,
		nameInput:       name,
		bar:             bar,
		notificationsOn: cfg.Notifications.Enabled,
		configPath:      configPath,
	}
}

// SetNotificationToggle wires the settings-screen notification switch to
// the composition root, which persists the change.
func (m *Model) SetNotificationToggle(fn func(bool)) {
	m.onToggleNotifs = fn
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 10
		if barWidth > 50 {
			barWidth = 50
		}
		if barWidth > 0 {
			m.bar.Width = barWidth
		}
		return m, nil

	case tea.KeyMsg:
		// Text-entry modes swallow everything except their own controls.
		if m.adding {
			return m.updateAddForm(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.editingName {
			return m.updateNameEdit(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.screen = screenHome
		case "2":
			m.screen = screenTasks
		case "3":
			m.screen = screenTracker
		case "4":
			m.screen = screenSettings
		case "tab":
			m.screen = (m.screen + 1) % 4
		case "shift+tab":
			m.screen = (m.screen + 3) % 4
		default:
			switch m.screen {
			case screenTasks:
				return m.updateTasks(msg)
			case screenSettings:
				return m.updateSettings(msg)
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenHome:
		body = m.viewHome()
	case screenTasks:
		body = m.viewTasks()
	case screenTracker:
		body = m.viewTracker()
	case screenSettings:
		body = m.viewSettings()
	}

	return "\n" + body + "\n" + m.viewTabBar() + "\n"
}

// viewTabBar renders the bottom-nav equivalent.
func (m Model) viewTabBar() string {
	out := "  "
	for i, name := range screenNames {
		if screen(i) == m.screen {
			out += m.st.tabActive.Render("["+name+"]") + "  "
		} else {
			out += m.st.tabInactive.Render(name) + "  "
		}
	}
	return out + m.st.help.Render("  1-4/tab switch · q quit")
}

// refresh re-reads the store snapshot and clamps the cursor.
func (m *Model) refresh(snapshot []domain.Task) {
	m.tasks = snapshot
	if max := len(m.visibleTasks()) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the fullscreen TUI.
func Run(store ports.TaskStore, cfg *config.Config, now func() time.Time, onToggleNotifs func(bool)) error {
	m := NewModel(store, cfg, now)
	m.SetNotificationToggle(onToggleNotifs)

	// Seed the layout before the first WindowSizeMsg arrives.
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		m.width = w
		m.height = h
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
