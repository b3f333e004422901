// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pwnedcheck/internal/hibp"
	"github.com/toeirei/pwnedcheck/internal/i18n"
)

type checkState int

const (
	checkStateEntering checkState = iota
	checkStateChecking
	checkStateDone
)

// checkResultMsg carries the outcome of one breach lookup back into the
// update loop.
type checkResultMsg struct {
	result hibp.Result
	err    error
}

// checkModel drives the password check view: masked entry, async
// lookup, result display.
type checkModel struct {
	state  checkState
	input  textinput.Model
	client *hibp.Client
	result hibp.Result
	err    error
}

func newCheckModel(client *hibp.Client) *checkModel {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = 256
	ti.Focus()

	return &checkModel{
		state:  checkStateEntering,
		input:  ti,
		client: client,
	}
}

func (m *checkModel) Init() tea.Cmd {
	return textinput.Blink
}

// checkPasswordCmd performs the lookup off the update loop. The
// password only lives inside the closure.
func checkPasswordCmd(client *hibp.Client, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Check(context.Background(), password)
		return checkResultMsg{result: result, err: err}
	}
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkResultMsg:
		m.state = checkStateDone
		m.result = msg.result
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.state != checkStateChecking {
				return m, func() tea.Msg { return backToMenuMsg{} }
			}
			return m, nil
		case "enter":
			switch m.state {
			case checkStateEntering:
				password := m.input.Value()
				m.state = checkStateChecking
				return m, checkPasswordCmd(m.client, password)
			case checkStateDone:
				// Start over with a fresh entry.
				m.state = checkStateEntering
				m.err = nil
				m.result = hibp.Result{}
				m.input.Reset()
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, nil
		}
	}

	if m.state == checkStateEntering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *checkModel) View() string {
	s := titleStyle.Render(i18n.T("menu.check")) + "\n\n"

	switch m.state {
	case checkStateEntering:
		s += i18n.T("check.prompt") + "\n"
		s += m.input.View() + "\n\n"
		s += helpStyle.Render(i18n.T("check.help"))
	case checkStateChecking:
		s += i18n.T("check.checking")
	case checkStateDone:
		switch {
		case m.err != nil:
			s += errorStyle.Render(i18n.T("check.error", m.err)) + "\n\n"
		case m.result.Found:
			s += breachStyle.Render(i18n.T("check.found_hash", m.result.FullHash)) + "\n"
			s += breachStyle.Render(i18n.T("check.occurrences", m.result.Occurrences)) + "\n\n"
		default:
			s += successStyle.Render(i18n.T("check.not_found")) + "\n\n"
		}
		s += helpStyle.Render(i18n.T("check.done_help"))
	}

	return docStyle.Render(s + "\n")
}
