package pretty

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	policy     lipgloss.Style
	round      lipgloss.Style
	coreKey    lipgloss.Style
	jobs       lipgloss.Style
	makespan   lipgloss.Style
	statsMeta  lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		policy:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		round:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).MarginTop(1),
		coreKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		jobs:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		makespan:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		statsMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
