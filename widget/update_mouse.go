package widget

import tea "github.com/charmbracelet/bubbletea"

// updateMouse focuses the clicked cell. Coordinates are relative to the
// widget: (0,0) is the top-left of its first cell.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.field == nil {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < 0 || msg.Y >= m.Height() {
		return m, nil
	}
	if i, ok := m.CellAt(msg.X); ok {
		m.field.FocusCell(i)
	}
	return m, nil
}
