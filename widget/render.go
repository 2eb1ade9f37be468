package widget

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/codeinput/cells"
	"github.com/iw2rmb/codeinput/internal/grapheme"
)

func (m Model) View() string {
	if m.field == nil {
		return ""
	}
	n := m.field.Len()
	parts := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 && m.cfg.Gap != "" {
			parts = append(parts, m.cfg.Gap)
		}
		parts = append(parts, m.renderCell(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Height returns the number of terminal rows the view occupies.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m Model) renderCell(i int) string {
	c, ok := m.field.Cell(i)
	if !ok {
		return ""
	}
	return m.cellStyle(i, c).Render(m.cellContent(c))
}

func (m Model) cellContent(c cells.Cell) string {
	if !c.Filled() {
		return m.cfg.Style.Placeholder.Render(padCenter(m.cfg.Placeholder, m.cfg.CellWidth))
	}
	text := c.Char
	if m.cfg.Mask != "" {
		text = m.cfg.Mask
	}
	return padCenter(text, m.cfg.CellWidth)
}

func (m Model) cellStyle(i int, c cells.Cell) lipgloss.Style {
	st := m.cfg.Style
	switch {
	case m.invalidCell() == i:
		return st.Invalid
	case m.focused && m.field.Cursor() == i:
		return st.Active
	case m.field.Complete():
		return st.Complete
	case c.Filled():
		return st.Filled
	default:
		return st.Cell
	}
}

// invalidCell returns the cell to flag for the last rejection, or -1.
func (m Model) invalidCell() int {
	var ie *cells.InputError
	if !errors.As(m.lastErr, &ie) {
		return -1
	}
	return clampInt(ie.Index, 0, m.field.Len()-1)
}

func padCenter(text string, width int) string {
	w := textWidth(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}

func textWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w <= 0 {
		w = grapheme.Width(text)
	}
	return w
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
