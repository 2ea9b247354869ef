// FILE: logviewer/src/internal/tui/styles.go
package tui

import (
	"logviewer/src/internal/core"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the pager
type Styles struct {
	Header    lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	LineRange lipgloss.Style
	Timestamp lipgloss.Style
	Module    lipgloss.Style
	Muted     lipgloss.Style

	levels map[core.Level]lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f8f8f2")).
			Background(lipgloss.Color("#44475a")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff5555")),
		LineRange: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")).
			Width(9),
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8be9fd")),
		Module: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bd93f9")),
		Muted: lipgloss.NewStyle().
			Faint(true),
		levels: map[core.Level]lipgloss.Style{
			core.LevelDebug:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4")).Width(8),
			core.LevelInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b")).Width(8),
			core.LevelWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c")).Width(8),
			core.LevelError:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Width(8),
			core.LevelCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5555")).Width(8),
		},
	}
}

// Level returns the style for a severity, falling back to INFO
func (s Styles) Level(level core.Level) lipgloss.Style {
	if st, ok := s.levels[level]; ok {
		return st
	}
	return s.levels[core.LevelInfo]
}
