package widget

import "github.com/charmbracelet/lipgloss"

// CellAt maps a widget-local column to a cell index. Columns on a gap map to
// the cell on their right; columns past the last cell report false.
func (m Model) CellAt(x int) (int, bool) {
	if m.field == nil || x < 0 {
		return 0, false
	}
	gap := lipgloss.Width(m.cfg.Gap)
	left := 0
	for i := 0; i < m.field.Len(); i++ {
		if i > 0 {
			left += gap
		}
		right := left + lipgloss.Width(m.renderCell(i))
		if x < right {
			return i, true
		}
		left = right
	}
	return 0, false
}
