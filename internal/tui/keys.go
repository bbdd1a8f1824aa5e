package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Action    key.Binding
	Submit    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	JumpTab   key.Binding
	Reset     key.Binding
	Prefill   key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Action: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next / calculate"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "next / calculate from any field"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "pgdown"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "pgup"),
			key.WithHelp("ctrl+←", "prev tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5"),
			key.WithHelp("alt+1-5", "jump to tab"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear all fields"),
		),
		Prefill: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "fill example values"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Action, k.NextTab, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Action, k.Submit},
		{k.NextTab, k.PrevTab, k.JumpTab, k.Back},
		{k.Reset, k.Prefill, k.Help, k.Quit},
	}
}
