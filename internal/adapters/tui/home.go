package tui

import (
	"fmt"
	"strings"

	"github.com/SamirAliWebDev/Todo/internal/stats"
)

// upcomingPreview is the number of incomplete tasks shown on the home
// screen quick view.
const upcomingPreview = 3

func (m Model) viewHome() string {
	var b strings.Builder

	greeting := fmt.Sprintf("Let's get this done, %s!", m.cfg.UserName)
	b.WriteString("  " + m.st.title.Render(greeting) + "\n")
	b.WriteString("  " + m.st.subtitle.Render("What's your focus for today?") + "\n\n")

	progress := stats.DailyProgress(m.tasks)

	b.WriteString("  " + m.st.accent.Render(stats.ProgressTitle(progress)) + "\n")
	b.WriteString("  " + m.st.dim.Render(fmt.Sprintf("%d of %d tasks done", progress.Completed, progress.Total)) + "\n")

	// Keep a visible sliver even at 0%, like the original progress bar.
	ratio := float64(progress.Percentage) / 100
	if ratio < 0.02 {
		ratio = 0.02
	}
	b.WriteString("  " + m.bar.ViewAs(ratio) + "\n\n")

	b.WriteString("  " + m.st.title.Render("Upcoming Tasks") + "\n")
	upcoming := stats.UpcomingTasks(m.tasks, upcomingPreview)
	if len(upcoming) == 0 {
		b.WriteString("  " + m.st.dim.Render("No upcoming tasks. Great job!") + "\n")
	} else {
		for _, t := range upcoming {
			row := "    " + m.st.dim.Render(m.theme.IconCheckempty) + " " + t.Text
			if badge := m.st.categoryBadge(m.theme, t.Category); badge != "" {
				row += " " + badge
			}
			if t.Time != "" {
				row += " " + m.st.dim.Render(t.Time)
			}
			b.WriteString(row + "\n")
		}
	}

	return b.String()
}
