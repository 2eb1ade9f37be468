package widget

import "github.com/charmbracelet/lipgloss"

// Style controls the widget's rendering. Each cell is rendered with Cell and
// then layered with the first matching state style.
type Style struct {
	Cell        lipgloss.Style
	Filled      lipgloss.Style
	Active      lipgloss.Style
	Invalid     lipgloss.Style
	Complete    lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return Style{
		Cell:        cell,
		Filled:      cell.BorderForeground(lipgloss.Color("250")).Bold(true),
		Active:      cell.BorderForeground(lipgloss.Color("212")),
		Invalid:     cell.BorderForeground(lipgloss.Color("196")),
		Complete:    cell.BorderForeground(lipgloss.Color("42")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
