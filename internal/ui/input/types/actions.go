package types

import "searchpanel/internal/domain"

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Tab actions
type SelectTabAction struct {
	Tab domain.Tab
}

func (a SelectTabAction) Type() string { return "select_tab" }

type CycleTabAction struct {
	Delta int // +1 next, -1 previous
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

// Settings popover actions
type ToggleSettingsAction struct{}

func (a ToggleSettingsAction) Type() string { return "toggle_settings" }

type CloseSettingsAction struct{}

func (a CloseSettingsAction) Type() string { return "close_settings" }

type ToggleFilterAction struct {
	Category domain.Category
}

func (a ToggleFilterAction) Type() string { return "toggle_filter" }

type MoveSettingsCursorAction struct {
	Delta int
}

func (a MoveSettingsCursorAction) Type() string { return "move_settings_cursor" }

// Results list actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type ScrollAction struct {
	Delta int
}

func (a ScrollAction) Type() string { return "scroll" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
