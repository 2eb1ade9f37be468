package field

import (
	"fmt"

	"github.com/iw2rmb/codeinput/cells"
)

// Config configures a Field.
type Config struct {
	// Length is the number of cells. Must be positive.
	Length int
	// Policy guards every cell write. Defaults to cells.Digits().
	Policy cells.Policy
	// Value is the initial controlled value. It is applied without firing
	// hooks.
	Value string

	// OnChange receives the consolidated value after every mutation.
	OnChange func(value string)
	// OnComplete fires once per transition into the all-filled condition.
	OnComplete func(value string)
	// OnInvalidInput receives every rejection as a *cells.InputError.
	OnInvalidInput func(err error)
}

// Field is the headless code input state: cells plus cursor.
type Field struct {
	cfg    Config
	cells  *cells.Cells
	cursor int

	version   uint64
	completed bool

	emitting bool
	deferred []func()

	lastChange    cells.Change
	hasLastChange bool
}

// New validates cfg and builds a Field. Misconfiguration is the only error
// path; everything after construction is reported through hooks.
func New(cfg Config) (*Field, error) {
	if cfg.Policy.IsZero() {
		cfg.Policy = cells.Digits()
	}
	cs, err := cells.New(cfg.Length, cfg.Policy)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	f := &Field{cfg: cfg, cells: cs}
	if cfg.Value != "" {
		f.replace(f.normalize(cfg.Value))
		f.cursor = cs.FirstEmpty()
	}
	f.completed = cs.Filled()
	return f, nil
}

// Len returns the number of cells.
func (f *Field) Len() int { return f.cells.Len() }

func (f *Field) Policy() cells.Policy { return f.cells.Policy() }

// Cursor returns the focused cell index, in 0..Len(). Len() means the field
// was just completed and no cell is focused.
func (f *Field) Cursor() int { return f.cursor }

// Version increases on every effective cell or cursor change.
func (f *Field) Version() uint64 { return f.version }

// Value returns the consolidated value.
func (f *Field) Value() string { return f.cells.Value() }

// Snapshot returns the per-cell characters, gaps as "".
func (f *Field) Snapshot() []string { return f.cells.Snapshot() }

// Cell returns the cell at index.
func (f *Field) Cell(index int) (cells.Cell, bool) { return f.cells.Cell(index) }

// Complete reports whether every cell is filled.
func (f *Field) Complete() bool { return f.cells.Filled() }

// LastChange returns the most recent effective transition.
func (f *Field) LastChange() (cells.Change, bool) {
	return f.lastChange, f.hasLastChange
}
