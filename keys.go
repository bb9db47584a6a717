package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application key bindings. Scrolling keys are handled by
// the viewport and only listed here for the help screen.
type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Compare   key.Binding
	FocusDiff key.Binding
	CopyLeft  key.Binding
	CopyRight key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "Next panel")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "Previous panel")),
		Compare:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "Compare")),
		FocusDiff: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Leave editor")),
		CopyLeft:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "Copy original column")),
		CopyRight: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "Copy changed column")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Show/hide this help screen")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "Quit from anywhere")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "Scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "Scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "Page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdown", "Page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "Jump to top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "Jump to bottom")),
	}
}

// helpSection is a titled group of bindings on the help screen
type helpSection struct {
	title    string
	bindings []key.Binding
}

func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{"Navigation", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}},
		{"Panels", []key.Binding{k.NextFocus, k.PrevFocus, k.FocusDiff}},
		{"Actions", []key.Binding{k.Compare, k.CopyLeft, k.CopyRight}},
		{"System", []key.Binding{k.Help, k.Quit, k.ForceQuit}},
	}
}
