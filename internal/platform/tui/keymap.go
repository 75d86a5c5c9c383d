package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathquiz/internal/core"
	"github.com/vovakirdan/mathquiz/internal/quiz"
)

// KeyMap defines the key bindings for the quiz.
type KeyMap struct {
	Digits    key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type answer"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Delete, k.Confirm, k.Quit, k.ForceQuit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Delete, k.Confirm},
		{k.Quit, k.ForceQuit},
	}
}

// ForPhase returns a copy of the key map with only the bindings that do
// something in the given phase enabled, so the help line stays honest.
func (k KeyMap) ForPhase(p quiz.Phase) KeyMap {
	playing := p == quiz.PhasePlaying
	k.Digits.SetEnabled(playing)
	k.Delete.SetEnabled(playing)
	k.Confirm.SetEnabled(p != quiz.PhaseGameOver)
	k.Quit.SetEnabled(p == quiz.PhaseGameOver)

	if p == quiz.PhaseMenu {
		k.Confirm.SetHelp("enter", "start")
	}
	return k
}

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to game events. Pasted text and
// multi-rune messages yield one digit event per rune, in order; other
// runes are dropped. isQuit is true for the terminal-level exit key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (events []core.Event, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		return nil, true
	case key.Matches(msg, km.keys.Confirm):
		return []core.Event{{Action: core.ActionConfirm}}, false
	case key.Matches(msg, km.keys.Delete):
		return []core.Event{{Action: core.ActionDelete}}, false
	case key.Matches(msg, km.keys.Quit):
		return []core.Event{{Action: core.ActionQuit}}, false
	}

	if msg.Type != tea.KeyRunes {
		return nil, false
	}
	for _, r := range msg.Runes {
		if r >= '0' && r <= '9' {
			events = append(events, core.Event{Action: core.ActionDigit, Rune: r})
		}
	}
	return events, false
}

// MapKeyToFrame appends the events for a key message to an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	events, isQuit := km.MapKey(msg)
	for _, e := range events {
		frame.Push(e)
	}
	return isQuit
}
