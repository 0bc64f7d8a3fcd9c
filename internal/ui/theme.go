package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Gutter    lipgloss.Style
	NowMarker lipgloss.Style
	NowLine   lipgloss.Style
	Event     lipgloss.Style
	EventLive lipgloss.Style
	Focused   lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
	Following lipgloss.Style
	Paused    lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Gutter:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	NowMarker: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	NowLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	Event:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	EventLive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAB387")),
	Focused:   lipgloss.NewStyle().Bold(true).Reverse(true),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Status:    lipgloss.NewStyle().Faint(true),
	Following: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Paused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
}

// eventStyle colors an event by its calendar color when one is set.
func (t Theme) eventStyle(color string, live bool) lipgloss.Style {
	s := t.Event
	if live {
		s = t.EventLive
	}
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	return s
}
