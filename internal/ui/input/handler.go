package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchpanel/internal/ui/input/modes"
	"searchpanel/internal/ui/input/types"
)

// Handler routes key messages to the handler of the current mode
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // query field, owned here and shared with query mode
}

// New creates a handler in query mode with seed as the initial query text
func New(seed string) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = "Search..."
	ti.SetValue(seed)
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput)
	h.modes[types.ModeSettings] = modes.NewSettingsMode()

	return h
}

// HandleKey processes a key in the current mode
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}

	if h.currentMode != types.ModeQuery {
		return nil, nil
	}

	// Unhandled keys edit the query
	var cmd tea.Cmd
	before := h.textInput.Value()
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.UpdateTextAction{Text: after})
	}
	return actions, cmd
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// ChangeMode leaves the current mode and enters mode
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// SyncText sets the query field without producing an action
func (h *Handler) SyncText(text string) {
	if h.textInput.Value() != text {
		h.textInput.SetValue(text)
	}
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeQuery
	}
	return h.currentMode
}

// TextInput returns the query field
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}
