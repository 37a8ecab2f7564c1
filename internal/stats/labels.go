package stats

import "github.com/SamirAliWebDev/Todo/internal/domain"

// ProgressTitle picks the qualitative headline for the home screen.
// Bands are inclusive at their lower bound and evaluated top-down.
func ProgressTitle(p Progress) string {
	switch {
	case p.Total == 0:
		return "Ready for a new day!"
	case p.Percentage == 100:
		return "Awesome! All done!"
	case p.Percentage >= 75:
		return "Almost there!"
	case p.Percentage >= 25:
		return "Keep up the momentum!"
	case p.Percentage > 0:
		return "Getting started!"
	default:
		return "Let's get started!"
	}
}

// Summary holds the tracker screen's stat-card values and labels.
type Summary struct {
	Progress       Progress
	Active         int
	RateLabel      string
	CompletedLabel string
	ActiveLabel    string
}

// Summarize computes the tracker stat cards for the current collection.
func Summarize(tasks []domain.Task) Summary {
	p := DailyProgress(tasks)
	s := Summary{
		Progress: p,
		Active:   p.Total - p.Completed,
	}

	if p.Total == 0 {
		s.CompletedLabel = "Nothing yet"
		s.ActiveLabel = "Add a task"
		s.RateLabel = "Set a goal"
		return s
	}

	switch {
	case p.Completed == 0:
		s.CompletedLabel = "Let's start!"
	case p.Completed == p.Total:
		s.CompletedLabel = "All clear!"
	case p.Completed*2 >= p.Total:
		s.CompletedLabel = "Almost there!"
	default:
		s.CompletedLabel = "Getting started"
	}

	switch {
	case s.Active == 0:
		s.ActiveLabel = "Well done!"
	case s.Active == 1:
		s.ActiveLabel = "One left"
	default:
		s.ActiveLabel = "Still to do"
	}

	switch {
	case p.Percentage == 0:
		s.RateLabel = "Start crushing it"
	case p.Percentage == 100:
		s.RateLabel = "Perfection!"
	case p.Percentage >= 50:
		s.RateLabel = "On a roll!"
	default:
		s.RateLabel = "Good progress"
	}

	return s
}
