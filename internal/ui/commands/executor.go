package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchpanel/internal/domain"
	"searchpanel/internal/eventbus"
	"searchpanel/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.PanelState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteSetQuery creates and executes a set query command
func (e *Executor) ExecuteSetQuery(query string) tea.Cmd {
	return NewSetQueryCommand(e.ctx, query).Execute()
}

// ExecuteClearQuery creates and executes a clear query command
func (e *Executor) ExecuteClearQuery() tea.Cmd {
	return NewClearQueryCommand(e.ctx).Execute()
}

// ExecuteSelectTab creates and executes a select tab command
func (e *Executor) ExecuteSelectTab(tab domain.Tab) tea.Cmd {
	return NewSelectTabCommand(e.ctx, tab).Execute()
}

// ExecuteCycleTab selects the tab delta steps away from the active one
func (e *Executor) ExecuteCycleTab(delta int) tea.Cmd {
	tab := e.ctx.State.ActiveTab()
	for ; delta > 0; delta-- {
		tab = tab.Next()
	}
	for ; delta < 0; delta++ {
		tab = tab.Prev()
	}
	return e.ExecuteSelectTab(tab)
}

// ExecuteToggleFilter creates and executes a toggle filter command
func (e *Executor) ExecuteToggleFilter(category domain.Category) tea.Cmd {
	return NewToggleFilterCommand(e.ctx, category).Execute()
}

// ExecuteToggleSettings creates and executes a toggle settings command
func (e *Executor) ExecuteToggleSettings() tea.Cmd {
	return NewToggleSettingsCommand(e.ctx).Execute()
}

// ExecuteCloseSettings creates and executes a close settings command
func (e *Executor) ExecuteCloseSettings() tea.Cmd {
	return NewCloseSettingsCommand(e.ctx).Execute()
}
