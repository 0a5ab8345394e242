package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"searchpanel/internal/ui/input/types"
	"searchpanel/internal/ui/logic"
	"searchpanel/internal/ui/state"
	"searchpanel/internal/ui/views"
)

// ViewModel transforms panel state into view-ready data
type ViewModel struct {
	state            *state.PanelState
	width            int
	height           int
	help             help.Model
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(panelState *state.PanelState, textInput *textinput.Model) *ViewModel {
	return &ViewModel{
		state:            panelState,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// BuildViewState creates a ViewState for rendering the given filter outcome
func (vm *ViewModel) BuildViewState(outcome logic.Outcome) views.ViewState {
	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		QueryInput:     vm.inputTransformer.GetInputText(),
		Query:          vm.state.Query(),
		ActiveTab:      vm.state.ActiveTab(),
		Counts:         outcome.Counts,
		Results:        outcome.Visible,
		Cursor:         vm.state.Cursor,
		ViewportOffset: vm.state.ViewportOffset,
		SettingsOpen:   vm.state.SettingsOpen(),
		Filters:        vm.state.Filters(),
		SettingsCursor: vm.state.SettingsCursor,
		StatusMessage:  vm.state.StatusMessage,
		HelpModel:      vm.help,
		HelpKeys:       vm.inputTransformer.HelpKeys(),
	}
}
