package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Append    key.Binding
	Remove    key.Binding
	ToggleDir key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "append pane"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove first pane"),
		),
		ToggleDir: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle ltr/rtl"),
		),
	}
}

// ShortHelp lists the bindings in display order.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Append, k.Remove, k.ToggleDir, k.Quit}
}
