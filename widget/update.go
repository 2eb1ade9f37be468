package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.field == nil {
		return m, nil
	}
	m.lastErr = nil

	// Paste events always go through bulk input and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.track(m.field.Paste(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.field.MoveLeft()
	case key.Matches(msg, km.Right):
		m.field.MoveRight()
	case key.Matches(msg, km.Home):
		m.field.MoveHome()
	case key.Matches(msg, km.End):
		m.field.MoveEnd()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.field.Backspace()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.field.Delete()
		}
	case key.Matches(msg, km.Clear):
		if !m.cfg.ReadOnly {
			m.field.Clear()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.track(m.field.Type(string(msg.Runes)))
			}
		}
	}

	return m, nil
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	// Codes copied from messages often carry trailing newlines or spaces.
	s = strings.TrimSpace(s)
	m.track(m.field.Paste(s))
}

func (m *Model) track(err error) {
	m.lastErr = err
}
