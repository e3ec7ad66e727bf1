package dialog

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Button  lipgloss.Style
	Help    lipgloss.Style
	Card    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Width(22),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Button:  lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()),
		Help:    lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
