package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Backspace  key.Binding
	DeleteWord key.Binding
	Clear      key.Binding
	Submit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete rune")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	}
}

// ShortHelp lists the bindings for a help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Backspace, k.DeleteWord, k.Clear, k.Submit}
}

func (k KeyMap) isZero() bool {
	for _, b := range k.ShortHelp() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
