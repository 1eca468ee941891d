package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Compact    key.Binding
	Logs       key.Binding
	Escape     key.Binding

	// Storefront actions
	Search   key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	LoadMore key.Binding
	Reload   key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Forms
	NextField   key.Binding
	PrevField   key.Binding
	ToggleField key.Binding
	Submit      key.Binding
	Confirm     key.Binding
	Accept      key.Binding
	Decline     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Compact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Compact cards"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Activity log"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / clear search"),
		),

		// Storefront actions
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search meals"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add meal"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit meal"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete meal"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Load more"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Forms
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		ToggleField: key.NewBinding(
			key.WithKeys(" ", "left", "right"),
			key.WithHelp("space", "Toggle status"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "Yes, delete"),
		),
		Decline: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc/n", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Search, k.Add, k.Edit, k.Delete, k.LoadMore, k.Reload},
		{k.NextField, k.PrevField, k.ToggleField, k.Submit},
		{k.CycleTheme, k.Compact, k.Logs, k.Help, k.Quit},
	}
}
