package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchpanel/internal/domain"
	"searchpanel/internal/ui/input/types"
)

// SettingsMode handles keys while the settings popover is open.
// A key the popover does not bind counts as an interaction outside it and
// closes the popover.
type SettingsMode struct{}

func NewSettingsMode() *SettingsMode {
	return &SettingsMode{}
}

func (m *SettingsMode) Name() string {
	return "settings"
}

func (m *SettingsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SettingsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SettingsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys

	switch {
	case key.Matches(msg, keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, keys.Settings):
		return []types.Action{types.ToggleSettingsAction{}}, true

	case key.Matches(msg, keys.SettingsUp):
		return []types.Action{types.MoveSettingsCursorAction{Delta: -1}}, true

	case key.Matches(msg, keys.SettingsDown):
		return []types.Action{types.MoveSettingsCursorAction{Delta: 1}}, true

	case key.Matches(msg, keys.Toggle):
		return []types.Action{types.ToggleFilterAction{Category: ctx.FocusedToggle().Category}}, true

	case key.Matches(msg, keys.ToggleFiles):
		return []types.Action{types.ToggleFilterAction{Category: domain.CategoryFiles}}, true

	case key.Matches(msg, keys.TogglePeople):
		return []types.Action{types.ToggleFilterAction{Category: domain.CategoryPeople}}, true
	}

	// esc and anything else dismiss the popover
	return []types.Action{types.CloseSettingsAction{}}, true
}
