package widget

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeinput/field"
)

// Model is a Bubble Tea component that renders and drives a field.Field.
type Model struct {
	cfg   Config
	field *field.Field

	focused bool

	// lastErr is the most recent rejection; cleared by the next accepted edit.
	lastErr error
}

// New builds a Model. It fails only on misconfiguration (length <= 0).
func New(cfg Config) (Model, error) {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 1
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = " "
	}

	var f *field.Field
	fcfg := field.Config{
		Length:         cfg.Length,
		Policy:         cfg.Policy,
		Value:          cfg.Value,
		OnComplete:     cfg.OnComplete,
		OnInvalidInput: cfg.OnInvalidInput,
	}
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		fcfg.OnChange = func(string) { onChange(buildChangeEvent(f)) }
	}

	var err error
	f, err = field.New(fcfg)
	if err != nil {
		return Model{}, fmt.Errorf("widget: %w", err)
	}
	return Model{cfg: cfg, field: f, focused: true}, nil
}

// Field exposes the headless state for hosts that drive it directly.
func (m Model) Field() *field.Field { return m.field }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Value() string { return m.field.Value() }

func (m Model) Cursor() int { return m.field.Cursor() }

// Err returns the last rejected input, if it has not been superseded.
func (m Model) Err() error { return m.lastErr }

// SetValue pulls an external controlled value into the cells.
func (m Model) SetValue(v string) Model {
	m.field.SetValue(v)
	m.lastErr = nil
	return m
}

// FocusCell moves the cursor to index.
func (m Model) FocusCell(index int) Model {
	m.field.FocusCell(index)
	return m
}

// Clear empties every cell.
func (m Model) Clear() Model {
	m.field.Clear()
	m.lastErr = nil
	return m
}

// SetValueMsg asks the Model to pull a new controlled value.
type SetValueMsg string

// ClearMsg asks the Model to empty every cell.
type ClearMsg struct{}

// FocusCellMsg asks the Model to focus a cell.
type FocusCellMsg int

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case SetValueMsg:
		return m.SetValue(string(msg)), nil
	case ClearMsg:
		return m.Clear(), nil
	case FocusCellMsg:
		return m.FocusCell(int(msg)), nil
	default:
		return m, nil
	}
}
