package viewmodels

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"

	"searchpanel/internal/domain"
	"searchpanel/internal/fixtures"
	"searchpanel/internal/ui/input/types"
	"searchpanel/internal/ui/logic"
	"searchpanel/internal/ui/state"
)

func TestBuildViewState(t *testing.T) {
	st := state.NewPanelState("Randa", domain.TabPeople)
	st.ToggleSettings()
	st.MoveSettingsCursor(1)
	ti := textinput.New()

	vm := NewViewModel(st, &ti)
	vm.SetDimensions(100, 30)
	out := logic.Apply(fixtures.Default(), logic.Criteria{Query: st.Query(), Tab: st.ActiveTab(), Filters: st.Filters()})

	vs := vm.BuildViewState(out)
	assert.Equal(t, 100, vs.Width)
	assert.Equal(t, 30, vs.Height)
	assert.Equal(t, "Randa", vs.Query)
	assert.Equal(t, domain.TabPeople, vs.ActiveTab)
	assert.True(t, vs.SettingsOpen)
	assert.Equal(t, 1, vs.SettingsCursor)
	assert.Equal(t, 1, vs.Counts.People)
	assert.Len(t, vs.Results, 1)
}

func TestHelpKeysFollowMode(t *testing.T) {
	ti := textinput.New()
	it := NewInputTransformer(&ti)

	assert.IsType(t, types.QueryHelp{}, it.HelpKeys())
	it.SetMode(types.ModeSettings)
	assert.IsType(t, types.SettingsHelp{}, it.HelpKeys())
}
