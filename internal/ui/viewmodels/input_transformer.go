package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"searchpanel/internal/ui/input/types"
)

// InputTransformer turns the input mode into view data
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput *textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeQuery,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetInputText returns the rendered query field
func (it *InputTransformer) GetInputText() string {
	if it.textInput == nil {
		return ""
	}
	return it.textInput.View()
}

// HelpKeys returns the footer bindings for the current mode
func (it *InputTransformer) HelpKeys() help.KeyMap {
	if it.mode == types.ModeSettings {
		return types.SettingsHelp{KeyMap: types.Keys}
	}
	return types.QueryHelp{KeyMap: types.Keys}
}
