package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchpanel/internal/domain"
	"searchpanel/internal/ui/input/types"
)

// QueryMode is the default mode: printable keys edit the query
type QueryMode struct {
	textInput *textinput.Model
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{textInput: ti}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys

	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, keys.Clear):
		// The clear affordance only exists while there is something to clear
		if ctx.Query() == "" {
			return nil, true
		}
		return []types.Action{types.ClearQueryAction{}}, true

	case key.Matches(msg, keys.Settings):
		return []types.Action{types.ToggleSettingsAction{}}, true

	case key.Matches(msg, keys.NextTab):
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case key.Matches(msg, keys.PrevTab):
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case key.Matches(msg, keys.TabAll):
		return []types.Action{types.SelectTabAction{Tab: domain.TabAll}}, true

	case key.Matches(msg, keys.TabFiles):
		return []types.Action{types.SelectTabAction{Tab: domain.TabFiles}}, true

	case key.Matches(msg, keys.TabPeople):
		return []types.Action{types.SelectTabAction{Tab: domain.TabPeople}}, true

	case key.Matches(msg, keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	// Everything else goes to the text input
	return nil, false
}
