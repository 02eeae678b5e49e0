// Package tui provides an interactive editor for the repoanalyzer configuration file.
package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	okColor      = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	failColor    = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	dimColor     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	changedColor = lipgloss.AdaptiveColor{Light: "#FF9500", Dark: "#FFAA33"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	summaryStyle  = lipgloss.NewStyle().Foreground(dimColor)
	changedStyle  = lipgloss.NewStyle().Foreground(changedColor)
	statusStyle   = lipgloss.NewStyle().Foreground(okColor)
	problemStyle  = lipgloss.NewStyle().Foreground(failColor)
	keyHintStyle  = lipgloss.NewStyle().Foreground(dimColor).MarginTop(1)
	unsavedBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(changedColor).Padding(1, 2)
)

// formTheme returns the huh theme for category forms. Screen readers get
// the undecorated base theme.
func formTheme(accessible bool) *huh.Theme {
	if accessible {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}
