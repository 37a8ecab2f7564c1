package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamirAliWebDev/Todo/internal/config"
	"github.com/SamirAliWebDev/Todo/internal/domain"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with
// defaults. If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles bundles the lipgloss styles derived from the active theme.
type styles struct {
	title       lipgloss.Style
	subtitle    lipgloss.Style
	dim         lipgloss.Style
	accent      lipgloss.Style
	done        lipgloss.Style
	doneText    lipgloss.Style
	cursor      lipgloss.Style
	help        lipgloss.Style
	card        lipgloss.Style
	statValue   lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	dayActive   lipgloss.Style
	dayToday    lipgloss.Style
	dayPlain    lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDim)),
		dim:         lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDim)),
		accent:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorAccent)).Bold(true),
		done:        lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDone)),
		doneText:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDim)).Strikethrough(true),
		cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorAccent)).Bold(true),
		help:        lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDim)),
		card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(theme.ColorDim)).Padding(0, 2),
		statValue:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorAccent)).Bold(true),
		tabActive:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorAccent)).Bold(true),
		tabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDim)),
		dayActive:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDone)).Bold(true),
		dayToday:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorAccent)).Bold(true).Underline(true),
		dayPlain:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDim)),
	}
}

// categoryBadge renders a themed badge for a task category. Uncategorized
// tasks get no badge.
func (s styles) categoryBadge(theme config.ThemeConfig, category domain.Category) string {
	if category == domain.CategoryNone {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.CategoryColor(string(category)))).
		Bold(true).
		Render("[" + string(category) + "]")
}
