package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open, Reload, Back, Quit, ForceQuit key.Binding
}

func newKeyMap(open, reload, back string) keyMap {
	return keyMap{
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", open)),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", reload)),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", back)),
		Quit:      key.NewBinding(key.WithKeys("q", "esc")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}
