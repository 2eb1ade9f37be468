package widget

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestView_PlainCellsWithPlaceholderAndGap(t *testing.T) {
	m := mustModel(t, Config{Length: 4, Value: "12", Placeholder: "_", Gap: " "})
	if got, want := m.View(), "1 2 _ _"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestView_MaskHidesCharacters(t *testing.T) {
	m := mustModel(t, Config{Length: 3, Value: "98", Mask: "*", Placeholder: "·"})
	if got, want := m.View(), "**·"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestView_CellWidthCentersGlyph(t *testing.T) {
	m := mustModel(t, Config{Length: 2, Value: "5", CellWidth: 3, Placeholder: "-"})
	if got, want := m.View(), " 5  - "; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestView_BorderedCells(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)

	box := r.NewStyle().Border(lipgloss.NormalBorder())
	m := mustModel(t, Config{
		Length: 3,
		Value:  "1",
		Gap:    " ",
		Style: Style{
			Cell:        box,
			Filled:      box,
			Active:      box,
			Invalid:     box,
			Complete:    box,
			Placeholder: r.NewStyle(),
		},
	})

	view := m.View()
	if got := m.Height(); got != 3 {
		t.Fatalf("height: got %d, want %d\n%s", got, 3, view)
	}
	if !strings.Contains(view, "│1│") {
		t.Fatalf("view missing filled cell:\n%s", view)
	}
	if got := strings.Count(strings.Split(view, "\n")[0], "┌─┐"); got != 3 {
		t.Fatalf("top border boxes: got %d, want %d\n%s", got, 3, view)
	}
}

func TestView_StatesUseDistinctStyles(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Cell:        r.NewStyle(),
		Filled:      r.NewStyle().Bold(true),
		Active:      r.NewStyle().Reverse(true),
		Invalid:     r.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Complete:    r.NewStyle().Underline(true),
		Placeholder: r.NewStyle(),
	}
	m := mustModel(t, Config{Length: 2, Style: st})

	m = typeText(m, "x")
	if got := m.renderCell(0); got != st.Invalid.Render(" ") {
		t.Fatalf("invalid cell: got %q, want %q", got, st.Invalid.Render(" "))
	}

	m = typeText(m, "1")
	if got := m.renderCell(0); got != st.Filled.Render("1") {
		t.Fatalf("filled cell: got %q, want %q", got, st.Filled.Render("1"))
	}
	if got := m.renderCell(1); got != st.Active.Render(" ") {
		t.Fatalf("active cell: got %q, want %q", got, st.Active.Render(" "))
	}

	m = typeText(m, "2")
	if got := m.renderCell(1); got != st.Complete.Render("2") {
		t.Fatalf("complete cell: got %q, want %q", got, st.Complete.Render("2"))
	}
}
