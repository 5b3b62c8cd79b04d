package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	staleness   lipgloss.Style
	detail      lipgloss.Style
	warning     lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	tableHeader lipgloss.Style
	cell        lipgloss.Style
	topRank     lipgloss.Style
	border      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		staleness:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")).Padding(0, 1),
		cell:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		topRank:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")).Padding(0, 1),
		border:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
