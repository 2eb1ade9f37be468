package widget

import "github.com/iw2rmb/codeinput/cells"

// Config configures the widget Model.
type Config struct {
	// Number of cells. Must be positive.
	Length int
	// Allowed characters. Defaults to cells.Digits().
	Policy cells.Policy
	// Initial controlled value.
	Value string

	// Rendering options.
	Style Style
	// Mask replaces filled characters in the view (PIN entry). Empty shows
	// the characters.
	Mask string
	// Placeholder is shown in empty cells. Defaults to a space.
	Placeholder string
	// Gap is placed between cells.
	Gap string
	// CellWidth is the content width of every cell in terminal columns.
	// Defaults to 1.
	CellWidth int

	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	// OnChange fires after every mutation of the cells.
	OnChange func(ChangeEvent)
	// OnComplete fires once each time the last empty cell gets filled.
	OnComplete func(value string)
	// OnInvalidInput receives rejected input as *cells.InputError.
	OnInvalidInput func(err error)
}
