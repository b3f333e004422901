// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pwnedcheck/internal/hibp"
	"github.com/toeirei/pwnedcheck/internal/i18n"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func newTestMain() mainModel {
	i18n.Init("en")
	return initialModel(hibp.NewClient("http://unused.invalid", 0), 25)
}

func TestMenu_Navigation(t *testing.T) {
	m := newTestMain()

	next, _ := m.Update(keyRune('j'))
	m = next.(mainModel)
	if m.menu.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.menu.cursor)
	}

	next, _ = m.Update(keyRune('k'))
	m = next.(mainModel)
	if m.menu.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.menu.cursor)
	}

	// The cursor never moves above the first item.
	next, _ = m.Update(keyRune('k'))
	m = next.(mainModel)
	if m.menu.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.menu.cursor)
	}
}

func TestMenu_EnterOpensCheckView(t *testing.T) {
	m := newTestMain()

	next, _ := m.Update(keyEnter())
	m = next.(mainModel)
	if m.state != checkView {
		t.Fatalf("state = %d, want checkView", m.state)
	}
	if m.checker == nil {
		t.Fatal("check sub-model not constructed")
	}
	if !strings.Contains(m.View(), i18n.T("check.prompt")) {
		t.Fatalf("check view missing prompt:\n%s", m.View())
	}
}

func TestMenu_EnterOpensGenerateView(t *testing.T) {
	m := newTestMain()

	next, _ := m.Update(keyRune('j'))
	m = next.(mainModel)
	next, _ = m.Update(keyEnter())
	m = next.(mainModel)

	if m.state != generateView {
		t.Fatalf("state = %d, want generateView", m.state)
	}
	if m.generator == nil {
		t.Fatal("generate sub-model not constructed")
	}
}

func TestCheckView_ResultRendering(t *testing.T) {
	i18n.Init("en")
	m := newCheckModel(hibp.NewClient("http://unused.invalid", 0))

	m.Update(checkResultMsg{result: hibp.Result{
		Found:       true,
		FullHash:    "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8",
		Occurrences: 3861493,
	}})

	view := m.View()
	if !strings.Contains(view, "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8") {
		t.Fatalf("view missing hash:\n%s", view)
	}
	if !strings.Contains(view, "3861493") {
		t.Fatalf("view missing occurrence count:\n%s", view)
	}
}

func TestCheckView_NotFoundRendering(t *testing.T) {
	i18n.Init("en")
	m := newCheckModel(hibp.NewClient("http://unused.invalid", 0))

	m.Update(checkResultMsg{result: hibp.Result{}})

	if !strings.Contains(m.View(), i18n.T("check.not_found")) {
		t.Fatalf("view missing not-found message:\n%s", m.View())
	}
}

func TestCheckView_EscReturnsToMenu(t *testing.T) {
	i18n.Init("en")
	m := newCheckModel(hibp.NewClient("http://unused.invalid", 0))

	_, cmd := m.Update(keyEsc())
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(backToMenuMsg); !ok {
		t.Fatalf("esc should emit backToMenuMsg, got %T", cmd())
	}
}

func TestGenerateView_ShowsPassword(t *testing.T) {
	i18n.Init("en")
	m := newGenerateModel(25)

	msg := m.Init()()
	gen, ok := msg.(generatedMsg)
	if !ok {
		t.Fatalf("Init cmd produced %T", msg)
	}
	if gen.err != nil {
		t.Fatalf("generate: %v", gen.err)
	}
	if len(gen.password) != 25 {
		t.Fatalf("generated %d characters, want 25", len(gen.password))
	}

	m.Update(gen)
	if !strings.Contains(m.View(), gen.password) {
		t.Fatalf("view missing the generated password:\n%s", m.View())
	}
}

func TestGenerateView_RegenerateProducesFreshPassword(t *testing.T) {
	i18n.Init("en")
	m := newGenerateModel(32)
	m.Update(m.Init()())
	first := m.password

	_, cmd := m.Update(keyRune('r'))
	if cmd == nil {
		t.Fatal("'r' should produce a regenerate command")
	}
	m.Update(cmd())

	// 94^32 outcomes; a collision here means the source is broken.
	if m.password == first {
		t.Fatalf("regenerated password identical to the first one: %q", m.password)
	}
}

func TestLanguageView_SwitchRebuildsMenu(t *testing.T) {
	m := newTestMain()
	enLabel := m.menu.choices[0]

	// Navigate: menu -> language view -> pick "Deutsch".
	next, _ := m.Update(keyRune('j'))
	m = next.(mainModel)
	next, _ = m.Update(keyRune('j'))
	m = next.(mainModel)
	next, _ = m.Update(keyEnter())
	m = next.(mainModel)
	if m.state != languageView {
		t.Fatalf("state = %d, want languageView", m.state)
	}

	next, _ = m.Update(keyRune('j'))
	m = next.(mainModel)
	next, cmd := m.Update(keyEnter())
	m = next.(mainModel)
	defer i18n.SetLang("en")

	if cmd == nil {
		t.Fatal("language selection should produce a command")
	}
	next, _ = m.Update(cmd())
	m = next.(mainModel)

	if m.state != menuView {
		t.Fatalf("state = %d, want menuView", m.state)
	}
	if m.menu.choices[0] == enLabel {
		t.Fatalf("menu labels not rebuilt after language switch: %q", m.menu.choices[0])
	}
}
