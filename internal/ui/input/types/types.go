package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchpanel/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeQuery Mode = iota
	ModeSettings
)

func (m Mode) String() string {
	switch m {
	case ModeSettings:
		return "settings"
	}
	return "query"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to panel state needed for input handling
type Context interface {
	Query() string
	FocusedToggle() domain.Toggle
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
