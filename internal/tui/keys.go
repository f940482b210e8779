package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Delete    key.Binding
	Yes       key.Binding
	No        key.Binding
	NextField key.Binding
	PrevField key.Binding
	Tab       key.Binding
	Screen    key.Binding
	Language  key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous option")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle product")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select/deselect all")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue / create")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete item")),
		Yes:       key.NewBinding(key.WithKeys("y", "s"), key.WithHelp("y", "confirm")),
		No:        key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/↓", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab/↑", "previous field")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		Screen:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "switch screen")),
		Language:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "switch language")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Screen, k.Tab, k.Language, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Screen, k.Tab, k.Language, k.Help, k.Quit},
		{k.Up, k.Down, k.Toggle, k.ToggleAll, k.Confirm},
		{k.NextField, k.PrevField, k.Left, k.Right, k.Back},
		{k.Delete, k.Yes, k.No},
	}
}
