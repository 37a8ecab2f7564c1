package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamirAliWebDev/Todo/internal/stats"
)

func (m Model) viewTracker() string {
	var b strings.Builder

	b.WriteString("  " + m.st.title.Render("Your Progress") + "\n")
	b.WriteString("  " + m.st.subtitle.Render("Keep up the great work!") + "\n\n")

	summary := stats.Summarize(m.tasks)

	rateCard := m.statCard(fmt.Sprintf("%d%%", summary.Progress.Percentage), summary.RateLabel)
	doneCard := m.statCard(fmt.Sprintf("%d", summary.Progress.Completed), summary.CompletedLabel)
	activeCard := m.statCard(fmt.Sprintf("%d", summary.Active), summary.ActiveLabel)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", rateCard, " ", doneCard, " ", activeCard) + "\n\n")

	b.WriteString(m.viewWeek())
	b.WriteString(m.viewCategories())

	return b.String()
}

func (m Model) statCard(value, label string) string {
	content := m.st.statValue.Render(value) + "\n" + m.st.dim.Render(label)
	return m.st.card.Render(content)
}

// viewWeek renders the Monday-Sunday activity calendar. Fully completed
// days are highlighted; today is always marked.
func (m Model) viewWeek() string {
	var b strings.Builder

	b.WriteString("  " + m.st.title.Render("This Week's Activity") + "\n")

	headers := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	b.WriteString("  ")
	for _, h := range headers {
		b.WriteString(m.st.dim.Render(fmt.Sprintf("%4s", h)))
	}
	b.WriteString("\n  ")

	for _, day := range stats.WeeklyActivity(m.tasks, m.now()) {
		cell := fmt.Sprintf("%4d", day.DayNumber)
		switch {
		case day.Active:
			b.WriteString(m.st.dayActive.Render(cell))
		case day.IsToday:
			b.WriteString(m.st.dayToday.Render(cell))
		default:
			b.WriteString(m.st.dayPlain.Render(cell))
		}
	}
	b.WriteString("\n\n")

	return b.String()
}

// viewCategories renders the per-category completion cards. Categories
// without tasks are omitted entirely.
func (m Model) viewCategories() string {
	breakdown := stats.CategoryBreakdown(m.tasks)
	if len(breakdown) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + m.st.title.Render("Categories") + "\n")

	for _, c := range breakdown {
		label := fmt.Sprintf("%-10s", string(c.Category))
		bar := fmt.Sprintf("%-*s", categoryBarWidth, buildBar(c.Percentage*categoryBarWidth/100))
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.CategoryColor(string(c.Category)))).Bold(true).Render(label),
			m.st.accent.Render(bar),
			m.st.dim.Render(fmt.Sprintf("%d/%d (%d%%)", c.Completed, c.Total, c.Percentage)),
		))
	}
	b.WriteString("\n")

	return b.String()
}

const categoryBarWidth = 20

// buildBar creates a horizontal bar using block characters.
func buildBar(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("█", width)
}
