package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewList        key.Binding
	Select         key.Binding
	DeleteList     key.Binding
	NewTask        key.Binding
	Toggle         key.Binding
	ClearCompleted key.Binding
	SwitchPane     key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewList:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		Select:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open list")),
		DeleteList:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete list")),
		NewTask:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Toggle:         key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle")),
		ClearCompleted: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear done")),
		SwitchPane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Quit:           key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:      key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewList, k.Select, k.NewTask, k.Toggle, k.ClearCompleted, k.DeleteList, k.SwitchPane, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewList, k.Select, k.DeleteList},
		{k.NewTask, k.Toggle, k.ClearCompleted},
		{k.SwitchPane, k.Quit},
	}
}
