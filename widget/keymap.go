package widget

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the widget key bindings.
//
// Any key not bound here that carries runes is typed into the cells.
type KeyMap struct {
	Left, Right key.Binding
	Home, End   key.Binding

	Backspace, Delete key.Binding
	Clear             key.Binding
	Paste             key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous cell")),
		Right: key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next cell")),
		Home:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "first cell")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "first empty cell")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "clear cell")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear all")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Backspace, km.Clear}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Home, km.End},
		{km.Backspace, km.Delete, km.Clear, km.Paste},
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
