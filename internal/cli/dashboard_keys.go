package cli

import "github.com/charmbracelet/bubbles/key"

type dashboardKeyMap struct {
	Add       key.Binding
	Remove    key.Binding
	CloseDay  key.Binding
	ResetWeek key.Binding
	EditQuota key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Add:       key.NewBinding(key.WithKeys("+", "=", "a"), key.WithHelp("+", "add")),
		Remove:    key.NewBinding(key.WithKeys("-", "_", "x"), key.WithHelp("-", "remove")),
		CloseDay:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "close day")),
		ResetWeek: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "reset week")),
		EditQuota: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit quota")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.EditQuota, k.Help, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Remove},
		{k.CloseDay, k.ResetWeek},
		{k.EditQuota, k.Help, k.Quit},
	}
}
