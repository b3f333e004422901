// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pwnedcheck/internal/generator"
	"github.com/toeirei/pwnedcheck/internal/i18n"
)

// generatedMsg carries a freshly generated password (or the failure)
// into the update loop.
type generatedMsg struct {
	password string
	err      error
}

// generateModel shows a generated password and lets the user regenerate
// or copy it.
type generateModel struct {
	length   int
	password string
	err      error
	copied   bool
}

func newGenerateModel(length int) *generateModel {
	if length < 1 {
		length = generator.DefaultLength
	}
	return &generateModel{length: length}
}

func (m *generateModel) Init() tea.Cmd {
	return generateCmd(m.length)
}

func generateCmd(length int) tea.Cmd {
	return func() tea.Msg {
		password, err := generator.Generate(length)
		return generatedMsg{password: password, err: err}
	}
}

func (m *generateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.password = msg.password
		m.err = msg.err
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "r":
			return m, generateCmd(m.length)
		case "c":
			if m.password != "" {
				if err := clipboard.WriteAll(m.password); err == nil {
					m.copied = true
				}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *generateModel) View() string {
	s := titleStyle.Render(i18n.T("generate.title")) + "\n\n"

	switch {
	case m.err != nil:
		s += errorStyle.Render(i18n.T("generate.error", m.err)) + "\n\n"
	case m.password != "":
		s += passwordBoxStyle.Render(m.password) + "\n\n"
		if m.copied {
			s += successStyle.Render(i18n.T("generate.copied")) + "\n\n"
		}
	}

	s += helpStyle.Render(i18n.T("generate.help"))
	return docStyle.Render(s + "\n")
}
