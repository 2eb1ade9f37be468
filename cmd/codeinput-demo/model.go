package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/codeinput/cells"
	"github.com/iw2rmb/codeinput/widget"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	quitKey   = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit"))
	submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
)

// events is shared by pointer so widget hooks can update it while the
// Bubble Tea model is passed by value.
type events struct {
	changes  int
	complete string
	invalid  error
}

type model struct {
	input  widget.Model
	events *events
	policy string

	submitted string
}

func newModel(opts options, logger *log.Logger) (model, error) {
	policy, err := cells.ParsePolicy(opts.Policy)
	if err != nil {
		return model{}, err
	}

	ev := &events{}
	input, err := widget.New(widget.Config{
		Length:      opts.Length,
		Policy:      policy,
		Value:       opts.Value,
		Style:       widget.DefaultStyle(),
		Mask:        opts.Mask,
		Placeholder: opts.Placeholder,
		Gap:         opts.Gap,
		OnChange: func(e widget.ChangeEvent) {
			ev.changes++
			ev.invalid = nil
			if !e.Complete {
				ev.complete = ""
			}
			logger.Debug("change", "value", e.Value, "cursor", e.Cursor, "version", e.Version)
		},
		OnComplete: func(v string) {
			ev.complete = v
			logger.Info("complete", "value", v)
		},
		OnInvalidInput: func(err error) {
			ev.invalid = err
			logger.Warn("rejected input", "err", err)
		},
	})
	if err != nil {
		return model{}, err
	}
	logger.Info("started", "length", opts.Length, "policy", policy.Name())
	return model{input: input, events: ev, policy: policy.Name()}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, submitKey):
			if m.input.Field().Complete() {
				m.submitted = m.input.Value()
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := fmt.Sprintf("policy: %s  cursor: %d/%d  changes: %d",
		m.policy, m.input.Cursor(), m.input.Field().Len(), m.events.changes)

	var line string
	switch {
	case m.events.invalid != nil:
		line = errorStyle.Render(m.events.invalid.Error())
	case m.events.complete != "":
		line = doneStyle.Render("complete, press enter to submit")
	default:
		line = statusStyle.Render("type or paste the code, esc quits")
	}

	return strings.Join([]string{
		titleStyle.Render("Enter code"),
		"",
		m.input.View(),
		"",
		statusStyle.Render(status),
		line,
	}, "\n") + "\n"
}
