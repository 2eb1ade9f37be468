package widget

import "github.com/iw2rmb/codeinput/field"

// ChangeEvent is delivered to Config.OnChange.
type ChangeEvent struct {
	Version  uint64
	Cursor   int
	Value    string
	Cells    []string
	Complete bool
}

func buildChangeEvent(f *field.Field) ChangeEvent {
	return ChangeEvent{
		Version:  f.Version(),
		Cursor:   f.Cursor(),
		Value:    f.Value(),
		Cells:    f.Snapshot(),
		Complete: f.Complete(),
	}
}
