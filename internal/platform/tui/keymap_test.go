package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{"x", runeKey('x'), core.ActionRotateCW},
		{"z", runeKey('z'), core.ActionRotateCCW},
		{"c", runeKey('c'), core.ActionHold},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"s", runeKey('s'), core.ActionStop},
		{"p", runeKey('p'), core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('y'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("%s: Action() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyMapHelpListsEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 12 {
		t.Errorf("FullHelp lists %d bindings, want 12", n)
	}
}

func TestShortHelpFitsNarrowTerminal(t *testing.T) {
	h := help.New()
	h.Width = 60

	view := h.View(DefaultKeyMap())
	for _, want := range []string{"enter", "drop", "more", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("short help %q missing %q", view, want)
		}
	}
	if strings.Contains(view, "…") {
		t.Errorf("short help truncated at width 60: %q", view)
	}
}
