package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzoryn/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: t})
}

func TestActionForDefaultBindings(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", specialKey(tea.KeyLeft), core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", specialKey(tea.KeyRight), core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"down arrow", specialKey(tea.KeyDown), core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"up arrow", specialKey(tea.KeyUp), core.ActionRotate},
		{"x", runeKey('x'), core.ActionRotate},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", specialKey(tea.KeyEsc), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"space", specialKey(tea.KeySpace), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", specialKey(tea.KeyCtrlC), core.ActionQuit},
		{"unbound key", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.ActionFor(tc.msg); got != tc.want {
				t.Errorf("ActionFor(%s) = %v, want %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHelpListsCoreBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	if len(keys.FullHelp()) != 2 {
		t.Errorf("FullHelp should have 2 columns, got %d", len(keys.FullHelp()))
	}
}
