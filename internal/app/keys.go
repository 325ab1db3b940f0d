package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application.
// Arrow and vim keys move between pages, number keys jump straight to one.
type KeyMap struct {
	Quit   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Page1  key.Binding
	Page2  key.Binding
	Page3  key.Binding
	Page4  key.Binding
	Page5  key.Binding
	Page6  key.Binding
	Page7  key.Binding
	Page8  key.Binding
	Page9  key.Binding
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Close  key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Page1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "page 1"),
		),
		Page2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "page 2"),
		),
		Page3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "page 3"),
		),
		Page4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "page 4"),
		),
		Page5: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "page 5"),
		),
		Page6: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "page 6"),
		),
		Page7: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "page 7"),
		),
		Page8: key.NewBinding(
			key.WithKeys("8"),
			key.WithHelp("8", "page 8"),
		),
		Page9: key.NewBinding(
			key.WithKeys("9"),
			key.WithHelp("9", "page 9"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// pageKeys returns the direct page bindings in page order.
func (k KeyMap) pageKeys() []key.Binding {
	return []key.Binding{
		k.Page1, k.Page2, k.Page3, k.Page4, k.Page5,
		k.Page6, k.Page7, k.Page8, k.Page9,
	}
}
