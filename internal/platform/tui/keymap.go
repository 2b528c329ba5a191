package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// KeyMap defines the key bindings for the lander.
type KeyMap struct {
	Thrust key.Binding
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Left, k.Right, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.Left, k.Right},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "thrust"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left rcs"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right rcs"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action. Unbound keys map to
// core.ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.Left):
		return core.ActionRCSLeft
	case key.Matches(msg, k.Right):
		return core.ActionRCSRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	}
	return core.ActionNone
}

// Holdable reports whether an action stays active while its key repeats.
// Menu actions fire once per press.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionThrust, core.ActionRCSLeft, core.ActionRCSRight:
		return true
	}
	return false
}
