// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal interface for
// pwnedcheck. This file, tui.go, contains the top-level model that acts
// as a router to the individual views.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pwnedcheck/internal/hibp"
	"github.com/toeirei/pwnedcheck/internal/i18n"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main navigation menu.
	menuView viewState = iota
	checkView
	generateView
	languageView
)

// backToMenuMsg signals a sub-view wants to return to the main menu.
type backToMenuMsg struct{}

// languageChangedMsg signals that the language changed and menu labels
// must be rebuilt.
type languageChangedMsg struct{}

// mainModel is the top-level model for the TUI. It acts as a state
// machine and router, delegating updates and view rendering to the
// currently active sub-model.
type mainModel struct {
	state     viewState
	menu      menuModel
	checker   *checkModel
	generator *generateModel
	language  languageModel
	client    *hibp.Client
	genLength int
	width     int
	height    int
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // the menu items to show
	cursor  int      // which menu item the cursor points at
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	codes  []string // stable iteration order
	names  map[string]string
	cursor int
}

func newMenuModel() menuModel {
	return menuModel{
		choices: []string{
			i18n.T("menu.check"),
			i18n.T("menu.generate"),
			i18n.T("menu.language"),
		},
	}
}

func newLanguageModel() languageModel {
	return languageModel{
		codes: []string{"en", "de"},
		names: map[string]string{"en": "English", "de": "Deutsch"},
	}
}

func initialModel(client *hibp.Client, genLength int) mainModel {
	return mainModel{
		state:     menuView,
		menu:      newMenuModel(),
		language:  newLanguageModel(),
		client:    client,
		genLength: genLength,
	}
}

// Run starts the TUI event loop. The client performs all breach lookups;
// genLength is the configured length for generated passwords.
func Run(client *hibp.Client, genLength int) error {
	p := tea.NewProgram(initialModel(client, genLength), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. It handles global events and
// delegates everything else to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		// ctrl+c quits from anywhere.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case backToMenuMsg:
		m.state = menuView
		m.checker = nil
		m.generator = nil
		return m, nil
	case languageChangedMsg:
		m.menu = newMenuModel()
		m.state = menuView
		return m, nil
	}

	switch m.state {
	case menuView:
		return m.updateMenu(msg)
	case checkView:
		return m.delegate(msg, m.checker)
	case generateView:
		return m.delegate(msg, m.generator)
	case languageView:
		return m.updateLanguage(msg)
	}
	return m, nil
}

// delegate forwards a message to the active sub-model.
func (m mainModel) delegate(msg tea.Msg, sub tea.Model) (tea.Model, tea.Cmd) {
	if sub == nil {
		return m, nil
	}
	_, cmd := sub.Update(msg)
	return m, cmd
}

func (m mainModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.menu.choices)-1 {
			m.menu.cursor++
		}
	case "enter":
		switch m.menu.cursor {
		case 0:
			m.state = checkView
			m.checker = newCheckModel(m.client)
			return m, m.checker.Init()
		case 1:
			m.state = generateView
			m.generator = newGenerateModel(m.genLength)
			return m, m.generator.Init()
		case 2:
			m.state = languageView
			m.language.cursor = 0
			return m, nil
		}
	}
	return m, nil
}

func (m mainModel) updateLanguage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc":
		m.state = menuView
		return m, nil
	case "up", "k":
		if m.language.cursor > 0 {
			m.language.cursor--
		}
	case "down", "j":
		if m.language.cursor < len(m.language.codes)-1 {
			m.language.cursor++
		}
	case "enter":
		i18n.SetLang(m.language.codes[m.language.cursor])
		return m, func() tea.Msg { return languageChangedMsg{} }
	}
	return m, nil
}

func (m mainModel) View() string {
	switch m.state {
	case checkView:
		if m.checker != nil {
			return m.checker.View()
		}
	case generateView:
		if m.generator != nil {
			return m.generator.View()
		}
	case languageView:
		return m.viewLanguage()
	}
	return m.viewMenu()
}

func (m mainModel) viewMenu() string {
	s := mainTitleStyle.Render(i18n.T("menu.title")) + "\n"
	s += helpStyle.Render(i18n.T("app.tagline")) + "\n\n"

	for i, choice := range m.menu.choices {
		cursor := "  "
		style := itemStyle
		if m.menu.cursor == i {
			cursor = "> "
			style = selectedItemStyle
		}
		s += cursor + style.Render(choice) + "\n"
	}

	s += "\n" + helpStyle.Render(i18n.T("menu.help")) + "\n"
	return docStyle.Render(s)
}

func (m mainModel) viewLanguage() string {
	s := titleStyle.Render(i18n.T("language.title")) + "\n\n"
	for i, code := range m.language.codes {
		cursor := "  "
		style := itemStyle
		if m.language.cursor == i {
			cursor = "> "
			style = selectedItemStyle
		}
		s += cursor + style.Render(m.language.names[code]) + "\n"
	}
	return docStyle.Render(s)
}
