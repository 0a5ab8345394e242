package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchpanel/internal/config"
	"searchpanel/internal/eventbus"
	sources "searchpanel/internal/logic"
	"searchpanel/internal/ui/commands"
	"searchpanel/internal/ui/input"
	inputtypes "searchpanel/internal/ui/input/types"
	"searchpanel/internal/ui/logic"
	"searchpanel/internal/ui/state"
	"searchpanel/internal/ui/viewmodels"
	"searchpanel/internal/ui/views"
)

// statusTimeout is how long a status message stays in the footer
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	source sources.ResultSource
	state  *state.PanelState // centralized state

	// UI-specific state not in PanelState
	width  int
	height int
	frame  views.Frame // last rendered frame, used for mouse hit testing

	// Handlers
	renderer     *views.Renderer       // view renderer
	viewModel    *viewmodels.ViewModel // view model for rendering
	cmdExecutor  *commands.Executor    // command executor
	inputHandler *input.Handler        // input handling
}

// NewModel creates a new UI model over the results of source
func NewModel(bus eventbus.EventBus, cfg *config.Config, source sources.ResultSource) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	panelState := state.NewPanelState(cfg.SeedQuery, cfg.Tab())
	panelState.ViewportHeight = views.PageSize(0)

	m := &Model{
		bus:          bus,
		config:       cfg,
		source:       source,
		state:        panelState,
		renderer:     views.NewRenderer(cfg.UISettings.HighlightMatches),
		inputHandler: input.New(cfg.SeedQuery),
		cmdExecutor:  commands.NewExecutor(panelState, bus),
	}
	m.viewModel = viewmodels.NewViewModel(panelState, m.inputHandler.TextInput())

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.state.ViewportHeight = views.PageSize(msg.Height)
		m.inputHandler.TextInput().Width = max(msg.Width-20, 10)
		m.navigate(func(*logic.Navigator) {})
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())
		return m, tea.Batch(cmd, m.apply(actions))

	case tea.MouseMsg:
		return m, m.apply(m.mouseActions(msg))

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "help pager", Err: msg.err})
			}
			m.state.StatusMessage = fmt.Sprintf("Help unavailable: %v", msg.err)
			return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	m.frame = m.renderer.Render(m.viewModel.BuildViewState(m.outcome()))
	return m.frame.View
}

// State exposes the panel state for inspection
func (m *Model) State() *state.PanelState {
	return m.state
}

// outcome runs the filter engine over the current state
func (m *Model) outcome() logic.Outcome {
	return logic.Apply(m.source.FetchResults(), logic.Criteria{
		Query:   m.state.Query(),
		Tab:     m.state.ActiveTab(),
		Filters: m.state.Filters(),
	})
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{State: m.state}
}

// apply executes actions in order and brings the input mode in line with the state
func (m *Model) apply(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.UpdateTextAction:
			cmds = append(cmds, m.cmdExecutor.ExecuteSetQuery(a.Text))
		case inputtypes.ClearQueryAction:
			cmds = append(cmds, m.cmdExecutor.ExecuteClearQuery())
		case inputtypes.SelectTabAction:
			cmds = append(cmds, m.cmdExecutor.ExecuteSelectTab(a.Tab))
		case inputtypes.CycleTabAction:
			cmds = append(cmds, m.cmdExecutor.ExecuteCycleTab(a.Delta))
		case inputtypes.ToggleSettingsAction:
			cmds = append(cmds, m.cmdExecutor.ExecuteToggleSettings())
		case inputtypes.CloseSettingsAction:
			cmds = append(cmds, m.cmdExecutor.ExecuteCloseSettings())
		case inputtypes.ToggleFilterAction:
			cmds = append(cmds, m.cmdExecutor.ExecuteToggleFilter(a.Category))
		case inputtypes.MoveSettingsCursorAction:
			m.state.MoveSettingsCursor(a.Delta)
		case inputtypes.NavigateAction:
			m.navigate(func(n *logic.Navigator) { n.Move(a.Direction) })
		case inputtypes.ScrollAction:
			m.navigate(func(n *logic.Navigator) { n.Scroll(a.Delta) })
		case inputtypes.ShowHelpAction:
			cmds = append(cmds, showHelp(m.width))
		case inputtypes.QuitAction:
			cmds = append(cmds, tea.Quit)
		}
	}
	m.syncInput()
	return tea.Batch(cmds...)
}

// syncInput switches the input mode to match the popover and mirrors the query
func (m *Model) syncInput() {
	mode := inputtypes.ModeQuery
	if m.state.SettingsOpen() {
		mode = inputtypes.ModeSettings
	}
	m.inputHandler.ChangeMode(mode, m.context())
	m.inputHandler.SyncText(m.state.Query())
	m.viewModel.SetInputMode(mode)
}

// navigate moves the results cursor with fn and stores the clamped position
func (m *Model) navigate(fn func(*logic.Navigator)) {
	total := len(m.outcome().Visible)
	n := logic.NewNavigator(m.state.Cursor, m.state.ViewportOffset, m.state.ViewportHeight, total)
	fn(n)
	m.state.Cursor = n.Cursor()
	m.state.ViewportOffset = n.Offset()
}

// mouseActions maps a mouse event on the last frame to actions. While the
// popover is open a click anywhere outside it only closes it.
func (m *Model) mouseActions(msg tea.MouseMsg) []inputtypes.Action {
	if m.state.SettingsOpen() {
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		target, ok := m.frame.HitTest(msg.X, msg.Y)
		switch {
		case ok && target.Kind == views.TargetToggle:
			return []inputtypes.Action{inputtypes.ToggleFilterAction{Category: target.Category}}
		case ok && target.Kind == views.TargetPopover:
			return nil
		case ok && target.Kind == views.TargetGear:
			return []inputtypes.Action{inputtypes.ToggleSettingsAction{}}
		}
		return []inputtypes.Action{inputtypes.CloseSettingsAction{}}
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return []inputtypes.Action{inputtypes.ScrollAction{Delta: -1}}
	case tea.MouseButtonWheelDown:
		return []inputtypes.Action{inputtypes.ScrollAction{Delta: 1}}
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	target, ok := m.frame.HitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}
	switch target.Kind {
	case views.TargetTab:
		return []inputtypes.Action{inputtypes.SelectTabAction{Tab: target.Tab}}
	case views.TargetClear:
		return []inputtypes.Action{inputtypes.ClearQueryAction{}}
	case views.TargetGear:
		return []inputtypes.Action{inputtypes.ToggleSettingsAction{}}
	case views.TargetResult:
		m.state.Cursor = target.Index
		m.navigate(func(*logic.Navigator) {})
	}
	return nil
}
