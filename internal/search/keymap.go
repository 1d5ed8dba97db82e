package search

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the search prompt. Word motions are
// whitespace-delimited; token motions also stop at punctuation.
type KeyMap struct {
	Accept     key.Binding
	Cancel     key.Binding
	ToggleMode key.Binding

	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	ClearLine key.Binding

	DeleteWord key.Binding
	WordLeft   key.Binding
	WordRight  key.Binding

	DeleteToken key.Binding
	TokenLeft   key.Binding
	TokenRight  key.Binding

	PrevMatch key.Binding
	NextMatch key.Binding
}

// DefaultKeyMap returns the standard emacs-flavored bindings. ctrl+h is
// what most terminals send for ctrl+backspace.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept:     key.NewBinding(key.WithKeys("enter")),
		Cancel:     key.NewBinding(key.WithKeys("esc", "ctrl+c", "ctrl+d")),
		ToggleMode: key.NewBinding(key.WithKeys("tab")),

		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		ClearLine: key.NewBinding(key.WithKeys("ctrl+u")),

		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w", "ctrl+h")),
		WordLeft:   key.NewBinding(key.WithKeys("ctrl+left", "ctrl+b")),
		WordRight:  key.NewBinding(key.WithKeys("ctrl+right", "ctrl+f")),

		DeleteToken: key.NewBinding(key.WithKeys("alt+backspace", "alt+w")),
		TokenLeft:   key.NewBinding(key.WithKeys("alt+left", "alt+b")),
		TokenRight:  key.NewBinding(key.WithKeys("alt+right", "alt+f")),

		PrevMatch: key.NewBinding(key.WithKeys("up", "f3")),
		NextMatch: key.NewBinding(key.WithKeys("down", "shift+f3")),
	}
}
