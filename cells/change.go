package cells

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceInput is a keystroke, paste or other router transition.
	ChangeSourceInput ChangeSource = iota
	// ChangeSourcePull is an external controlled value pushed into the cells.
	ChangeSourcePull
)

func (s ChangeSource) String() string {
	if s == ChangeSourcePull {
		return "pull"
	}
	return "input"
}

// Change is a normalized, versioned transition payload.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	ValueBefore   string
	ValueAfter    string
	// Completed is set when this change moved the cells into the all-filled
	// condition.
	Completed bool
}

// ValueChanged reports whether the consolidated value differs.
func (c Change) ValueChanged() bool { return c.ValueBefore != c.ValueAfter }
