package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the key bindings. The list itself is driven by the mouse only.
type keyMap struct {
	SwitchPane key.Binding
	Accept     key.Binding
	Rescan     key.Binding
	View       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view selection"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.SwitchPane, k.View, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.Quit},
		{k.SwitchPane, k.Rescan, k.View},
		{mouseHelp("click", "select"), mouseHelp("shift+click", "select range"), mouseHelp("ctrl/alt+click", "toggle")},
		{k.Help},
	}
}

// mouseHelp builds a help-only binding describing a mouse gesture
func mouseHelp(gesture, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(gesture), key.WithHelp(gesture, desc))
}
