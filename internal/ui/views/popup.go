package views

import (
	"strings"

	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"searchpanel/internal/domain"
)

// PopupRenderer handles the settings popover
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderSettings renders the popover box. Toggle i sits on line i+1 of the
// box, below the top border.
func (pr *PopupRenderer) RenderSettings(filters domain.ContentFilters, cursor int) string {
	rows := make([]string, 0, len(domain.Toggles))
	for i, toggle := range domain.Toggles {
		focused := i == cursor
		marker := " "
		if focused {
			marker = pr.styles.Prompt.Render(cursorMark)
		}

		label := runewidth.FillRight(toggle.Category.Label(), 8)
		var body string
		switch {
		case toggle.Disabled:
			body = pr.styles.Disabled.Render(label + "[ ] unavailable")
		case filters.Enabled(toggle.Category):
			body = label + pr.styles.Toggle.Render("[x]") + strings.Repeat(" ", len(" unavailable"))
		default:
			body = label + pr.styles.ToggleOff.Render("[ ]") + strings.Repeat(" ", len(" unavailable"))
		}
		if focused {
			body = pr.styles.ToggleFocus.Render(body)
		}
		rows = append(rows, marker+" "+body)
	}
	return pr.styles.Popover.Render(strings.Join(rows, "\n"))
}

// RenderPopupOverlay draws popup over mainContent with its top-left corner at
// column x, line y. The main content is dimmed.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popup string, x, y int) string {
	baseLayer := lipglossv2.NewLayer(pr.desaturateANSI(mainContent))

	// Modal layer on top (only its bounding box, not whole lines)
	modalLayer := lipglossv2.NewLayer(popup).X(x).Y(y).Z(1)

	return lipglossv2.NewCanvas(baseLayer, modalLayer).Render()
}

// desaturateANSI strips color/style codes and repaints each line with the backdrop style
func (pr *PopupRenderer) desaturateANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = pr.styles.Backdrop.Render(line)
	}
	return strings.Join(lines, "\n")
}
