package field

import (
	"strings"

	"github.com/iw2rmb/codeinput/cells"
)

type transition struct {
	source        cells.ChangeSource
	versionBefore uint64
	cellsVersion  uint64
	cursorBefore  int
	valueBefore   string
}

// SetValue replaces every cell with the policy-passing graphemes of value,
// truncated to Len(), and moves the cursor to the first empty cell (or Len()
// when full). OnChange always fires, even when value is unchanged.
//
// Called from inside a hook, the pull is applied after the hook returns and
// is dropped if it would not change the consolidated value.
func (f *Field) SetValue(value string) {
	if f.emitting {
		f.deferred = append(f.deferred, func() { f.pull(value, true) })
		return
	}
	f.pull(value, false)
}

func (f *Field) pull(value string, echo bool) {
	next := f.normalize(value)
	if echo && strings.Join(next, "") == f.cells.Value() {
		return
	}

	t := f.begin(cells.ChangeSourcePull)
	f.replace(next)
	f.cursor = f.cells.FirstEmpty()
	f.commit(t, true)
}

func (f *Field) normalize(value string) []string {
	next := f.cells.Filter(value)
	if len(next) > f.cells.Len() {
		next = next[:f.cells.Len()]
	}
	return next
}

func (f *Field) replace(next []string) {
	for i := 0; i < f.cells.Len(); i++ {
		g := ""
		if i < len(next) {
			g = next[i]
		}
		_, _ = f.cells.SetCharacter(i, g)
	}
}

func (f *Field) begin(source cells.ChangeSource) transition {
	return transition{
		source:        source,
		versionBefore: f.version,
		cellsVersion:  f.cells.Version(),
		cursorBefore:  f.cursor,
		valueBefore:   f.cells.Value(),
	}
}

// commit records the transition and pushes the result out. force pushes
// OnChange even when no cell changed.
func (f *Field) commit(t transition, force bool) {
	cellsChanged := f.cells.Version() != t.cellsVersion
	cursorChanged := f.cursor != t.cursorBefore
	if !cellsChanged && !cursorChanged && !force {
		return
	}
	if cellsChanged || cursorChanged {
		f.version++
	}

	filled := f.cells.Filled()
	ch := cells.Change{
		Source:        t.source,
		VersionBefore: t.versionBefore,
		VersionAfter:  f.version,
		CursorBefore:  t.cursorBefore,
		CursorAfter:   f.cursor,
		ValueBefore:   t.valueBefore,
		ValueAfter:    f.cells.Value(),
		Completed:     filled && !f.completed,
	}
	f.completed = filled
	f.lastChange = ch
	f.hasLastChange = true

	if !cellsChanged && !force {
		return
	}
	f.notify(func() {
		if f.cfg.OnChange != nil {
			f.cfg.OnChange(ch.ValueAfter)
		}
		if ch.Completed && f.cfg.OnComplete != nil {
			f.cfg.OnComplete(ch.ValueAfter)
		}
	})
}

func (f *Field) reject(err error) error {
	if f.cfg.OnInvalidInput != nil {
		f.notify(func() { f.cfg.OnInvalidInput(err) })
	}
	return err
}

func (f *Field) notify(fn func()) {
	func() {
		f.emitting = true
		defer func() { f.emitting = false }()
		fn()
	}()
	f.drain()
}

func (f *Field) drain() {
	for len(f.deferred) > 0 && !f.emitting {
		op := f.deferred[0]
		f.deferred = f.deferred[1:]
		op()
	}
}
