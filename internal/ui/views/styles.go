package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt      lipgloss.Style
	Clear       lipgloss.Style
	Gear        lipgloss.Style
	GearActive  lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	TabCount    lipgloss.Style
	Separator   lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Avatar      lipgloss.Style
	Presence    lipgloss.Style
	Glyph       lipgloss.Style
	Badge       lipgloss.Style
	Empty       lipgloss.Style
	Popover     lipgloss.Style
	Toggle      lipgloss.Style
	ToggleFocus lipgloss.Style
	ToggleOff   lipgloss.Style
	Disabled    lipgloss.Style
	Backdrop    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Clear:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Gear:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		GearActive: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		TabCount:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Avatar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("60")).
			Bold(true),
		Presence: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Glyph:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Popover: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Toggle:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		ToggleFocus: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		ToggleOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
		Backdrop:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
