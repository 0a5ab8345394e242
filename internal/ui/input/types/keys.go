package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the panel
type KeyMap struct {
	ForceQuit    key.Binding
	Quit         key.Binding
	Help         key.Binding
	Clear        key.Binding
	Settings     key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	TabAll       key.Binding
	TabFiles     key.Binding
	TabPeople    key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Close        key.Binding
	SettingsUp   key.Binding
	SettingsDown key.Binding
	Toggle       key.Binding
	ToggleFiles  key.Binding
	TogglePeople key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Quit:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	Help:         key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Clear:        key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	Settings:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
	NextTab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	TabAll:       key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "all")),
	TabFiles:     key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "files")),
	TabPeople:    key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "people")),
	Up:           key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
	Down:         key.NewBinding(key.WithKeys("down")),
	PageUp:       key.NewBinding(key.WithKeys("pgup")),
	PageDown:     key.NewBinding(key.WithKeys("pgdown")),
	Home:         key.NewBinding(key.WithKeys("home")),
	End:          key.NewBinding(key.WithKeys("end")),
	Close:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	SettingsUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	SettingsDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:       key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	ToggleFiles:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "files")),
	TogglePeople: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "people")),
}

// QueryHelp is the footer help shown while typing a query
type QueryHelp struct{ KeyMap }

func (h QueryHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.NextTab, h.Clear, h.Settings, h.Up, h.Help, h.Quit}
}

func (h QueryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.NextTab, h.PrevTab, h.TabAll, h.TabFiles, h.TabPeople},
		{h.Clear, h.Settings, h.Up, h.Help, h.Quit},
	}
}

// SettingsHelp is the footer help shown while the popover is open
type SettingsHelp struct{ KeyMap }

func (h SettingsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.SettingsUp, h.SettingsDown, h.Toggle, h.ToggleFiles, h.TogglePeople, h.Close}
}

func (h SettingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
