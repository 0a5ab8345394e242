package input

import (
	"searchpanel/internal/domain"
	"searchpanel/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.PanelState
}

// Query returns the current query text
func (c *ModelContext) Query() string {
	return c.State.Query()
}

// FocusedToggle returns the popover row under the cursor
func (c *ModelContext) FocusedToggle() domain.Toggle {
	return c.State.FocusedToggle()
}
