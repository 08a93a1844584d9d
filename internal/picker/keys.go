package picker

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleUp  key.Binding
	ToggleAll key.Binding
	Accept    key.Binding
	Dismiss   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle")),
		ToggleUp:  key.NewBinding(key.WithKeys("shift+tab")),
		ToggleAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "all")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy")),
		Dismiss:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleAll, k.Accept, k.Dismiss}
}
