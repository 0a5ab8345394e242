package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchpanel/internal/domain"
	"searchpanel/internal/eventbus"
	"searchpanel/internal/ui/state"
)

// Command represents an executable state transition
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.PanelState
	Bus   eventbus.EventBus
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// SetQueryCommand replaces the query text
type SetQueryCommand struct {
	ctx   *CommandContext
	query string
}

// NewSetQueryCommand creates a new set query command
func NewSetQueryCommand(ctx *CommandContext, query string) *SetQueryCommand {
	return &SetQueryCommand{ctx: ctx, query: query}
}

// Execute performs the query change
func (c *SetQueryCommand) Execute() tea.Cmd {
	if c.ctx.State.SetQuery(c.query) {
		c.ctx.publish(eventbus.QueryChangedEvent{Query: c.query})
	}
	return nil
}

// ClearQueryCommand empties the query
type ClearQueryCommand struct {
	ctx *CommandContext
}

// NewClearQueryCommand creates a new clear query command
func NewClearQueryCommand(ctx *CommandContext) *ClearQueryCommand {
	return &ClearQueryCommand{ctx: ctx}
}

// Execute performs the clear
func (c *ClearQueryCommand) Execute() tea.Cmd {
	if c.ctx.State.ClearQuery() {
		c.ctx.publish(eventbus.QueryClearedEvent{})
	}
	return nil
}

// SelectTabCommand activates a tab
type SelectTabCommand struct {
	ctx *CommandContext
	tab domain.Tab
}

// NewSelectTabCommand creates a new select tab command
func NewSelectTabCommand(ctx *CommandContext, tab domain.Tab) *SelectTabCommand {
	return &SelectTabCommand{ctx: ctx, tab: tab}
}

// Execute performs the tab change
func (c *SelectTabCommand) Execute() tea.Cmd {
	if c.ctx.State.SetTab(c.tab) {
		c.ctx.publish(eventbus.TabSelectedEvent{Tab: c.tab})
	}
	return nil
}

// ToggleFilterCommand flips a content filter
type ToggleFilterCommand struct {
	ctx      *CommandContext
	category domain.Category
}

// NewToggleFilterCommand creates a new toggle filter command
func NewToggleFilterCommand(ctx *CommandContext, category domain.Category) *ToggleFilterCommand {
	return &ToggleFilterCommand{ctx: ctx, category: category}
}

// Execute performs the toggle. Disabled categories change nothing.
func (c *ToggleFilterCommand) Execute() tea.Cmd {
	if c.ctx.State.ToggleFilter(c.category) {
		c.ctx.publish(eventbus.FilterToggledEvent{
			Category: c.category,
			Enabled:  c.ctx.State.Filters().Enabled(c.category),
		})
	}
	return nil
}

// ToggleSettingsCommand opens or closes the settings popover
type ToggleSettingsCommand struct {
	ctx *CommandContext
}

// NewToggleSettingsCommand creates a new toggle settings command
func NewToggleSettingsCommand(ctx *CommandContext) *ToggleSettingsCommand {
	return &ToggleSettingsCommand{ctx: ctx}
}

// Execute performs the toggle
func (c *ToggleSettingsCommand) Execute() tea.Cmd {
	c.ctx.State.ToggleSettings()
	if c.ctx.State.SettingsOpen() {
		c.ctx.publish(eventbus.SettingsOpenedEvent{})
	} else {
		c.ctx.publish(eventbus.SettingsClosedEvent{})
	}
	return nil
}

// CloseSettingsCommand dismisses the settings popover
type CloseSettingsCommand struct {
	ctx *CommandContext
}

// NewCloseSettingsCommand creates a new close settings command
func NewCloseSettingsCommand(ctx *CommandContext) *CloseSettingsCommand {
	return &CloseSettingsCommand{ctx: ctx}
}

// Execute performs the close
func (c *CloseSettingsCommand) Execute() tea.Cmd {
	if c.ctx.State.CloseSettings() {
		c.ctx.publish(eventbus.SettingsClosedEvent{})
	}
	return nil
}
