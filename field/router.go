package field

import (
	"github.com/iw2rmb/codeinput/cells"
	"github.com/iw2rmb/codeinput/internal/grapheme"
)

// Type routes a keystroke payload: one grapheme is character entry, more is
// bulk input.
func (f *Field) Type(text string) error {
	switch grapheme.Count(text) {
	case 0:
		return nil
	case 1:
		return f.TypeCharacter(text)
	default:
		return f.Paste(text)
	}
}

// TypeCharacter writes g at the cursor and advances it.
func (f *Field) TypeCharacter(g string) error {
	if f.emitting {
		f.deferred = append(f.deferred, func() { _ = f.TypeCharacter(g) })
		return nil
	}

	p := f.cursor
	if g == "" {
		return f.reject(cells.NewInputError(cells.ReasonInvalidCharacter, p, g))
	}
	if p >= f.cells.Len() {
		return f.reject(cells.NewInputError(cells.ReasonOverflow, p, g))
	}

	t := f.begin(cells.ChangeSourceInput)
	if _, err := f.cells.SetCharacter(p, g); err != nil {
		return f.reject(err)
	}
	f.cursor = min(p+1, f.cells.Len())
	f.commit(t, false)
	return nil
}

// Paste distributes the policy-passing graphemes of text from the cursor
// onward. Rejected graphemes consume no cell; anything past the last cell is
// discarded.
func (f *Field) Paste(text string) error {
	if f.emitting {
		f.deferred = append(f.deferred, func() { _ = f.Paste(text) })
		return nil
	}
	if text == "" {
		return nil
	}

	p := f.cursor
	accepted := f.cells.Filter(text)
	if len(accepted) == 0 {
		return f.reject(cells.NewInputError(cells.ReasonNoValidCharacters, p, text))
	}
	if p >= f.cells.Len() {
		return f.reject(cells.NewInputError(cells.ReasonOverflow, p, text))
	}

	t := f.begin(cells.ChangeSourceInput)
	i := p
	for _, g := range accepted {
		if i >= f.cells.Len() {
			break
		}
		if _, err := f.cells.SetCharacter(i, g); err != nil {
			break
		}
		i++
	}
	f.cursor = i
	f.commit(t, false)
	return nil
}

// Backspace clears the focused cell, or, when it is already empty, steps back
// one cell and clears that one.
func (f *Field) Backspace() {
	if f.emitting {
		f.deferred = append(f.deferred, f.Backspace)
		return
	}

	p := f.cursor
	t := f.begin(cells.ChangeSourceInput)
	if c, ok := f.cells.Cell(p); ok && c.Filled() {
		_, _ = f.cells.Clear(p)
	} else if p > 0 {
		f.cursor = p - 1
		_, _ = f.cells.Clear(p - 1)
	}
	f.commit(t, false)
}

// Delete clears the focused cell without moving the cursor.
func (f *Field) Delete() {
	if f.emitting {
		f.deferred = append(f.deferred, f.Delete)
		return
	}

	t := f.begin(cells.ChangeSourceInput)
	if c, ok := f.cells.Cell(f.cursor); ok && c.Filled() {
		_, _ = f.cells.Clear(f.cursor)
	}
	f.commit(t, false)
}

func (f *Field) MoveLeft() { f.moveTo(f.cursor - 1) }

func (f *Field) MoveRight() { f.moveTo(f.cursor + 1) }

func (f *Field) MoveHome() { f.moveTo(0) }

// MoveEnd focuses the first empty cell, or the last cell when all are filled.
func (f *Field) MoveEnd() { f.moveTo(f.cells.FirstEmpty()) }

// FocusCell moves the cursor to index, clamped into 0..Len()-1.
func (f *Field) FocusCell(index int) { f.moveTo(index) }

// Clear empties every cell and focuses the first one.
func (f *Field) Clear() {
	if f.emitting {
		f.deferred = append(f.deferred, f.Clear)
		return
	}

	t := f.begin(cells.ChangeSourceInput)
	f.cells.Reset()
	f.cursor = 0
	f.commit(t, false)
}

func (f *Field) moveTo(index int) {
	if f.emitting {
		f.deferred = append(f.deferred, func() { f.moveTo(index) })
		return
	}

	t := f.begin(cells.ChangeSourceInput)
	f.cursor = clampInt(index, 0, f.cells.Len()-1)
	f.commit(t, false)
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
