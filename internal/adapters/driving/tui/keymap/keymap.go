// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
// Letter keys are never bound: every printable key belongs to the answer.
type KeyMap struct {
	// Submit sends the typed answer.
	Submit key.Binding

	// Quit exits the application, abandoning an unfinished interview.
	Quit key.Binding

	// Restart begins a new interview once the current one is finished.
	Restart key.Binding

	// Clear empties the answer box.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new interview"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
	}
}

// InterviewHelp returns keybindings shown while questions remain.
func (k *KeyMap) InterviewHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Quit}
}

// DoneHelp returns keybindings shown after the report is written.
func (k *KeyMap) DoneHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
