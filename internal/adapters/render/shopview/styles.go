package shopview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	meta      lipgloss.Style
	price     lipgloss.Style
	sale      lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	lineKey   lipgloss.Style
	amount    lipgloss.Style
	estimated lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		price:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		sale:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		lineKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		amount:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		estimated: lipgloss.NewStyle().Faint(true),
	}
}
