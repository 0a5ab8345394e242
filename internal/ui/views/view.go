package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"searchpanel/internal/domain"
	"searchpanel/internal/ui/logic"
)

// Frame geometry. The main container pads content by one line and two columns.
const (
	padTop      = 1
	padLeft     = 2
	headerLines = 3 // search line, tabs, separator
	footerLines = 1

	defaultWidth  = 80
	defaultHeight = 24
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	QueryInput     string // rendered text input
	Query          string
	ActiveTab      domain.Tab
	Counts         logic.Counts
	Results        []domain.SearchResult // visible results in order
	Cursor         int
	ViewportOffset int
	SettingsOpen   bool
	Filters        domain.ContentFilters
	SettingsCursor int
	StatusMessage  string
	HelpModel      help.Model
	HelpKeys       help.KeyMap
}

// TargetKind identifies what a hit region stands for
type TargetKind int

const (
	TargetTab TargetKind = iota
	TargetClear
	TargetGear
	TargetToggle
	TargetPopover
	TargetResult
)

// Target is the UI element under a hit region
type Target struct {
	Kind     TargetKind
	Tab      domain.Tab
	Category domain.Category
	Index    int
}

// Region maps a rectangle of the frame to a target
type Region struct {
	X, Y, W, H int
	Target     Target
}

// Contains reports whether cell (x, y) lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Frame is a rendered screen with its clickable regions
type Frame struct {
	View    string
	Regions []Region
}

// HitTest returns the topmost target at cell (x, y)
func (f Frame) HitTest(x, y int) (Target, bool) {
	for i := len(f.Regions) - 1; i >= 0; i-- {
		if f.Regions[i].Contains(x, y) {
			return f.Regions[i].Target, true
		}
	}
	return Target{}, false
}

// PageSize returns how many results fit in a terminal of the given height
func PageSize(height int) int {
	if height <= 0 {
		height = defaultHeight
	}
	rows := height - 2*padTop - headerLines - footerLines
	if rows < RowHeight {
		return 1
	}
	return rows / RowHeight
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(highlightMatches bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles, highlightMatches),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete frame
func (r *Renderer) Render(state ViewState) Frame {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	inner := width - 2*padLeft

	var frame Frame
	var lines []string

	lines = append(lines, r.renderSearchLine(state, inner, &frame))
	lines = append(lines, r.renderTabs(state, &frame))
	lines = append(lines, r.styles.Separator.Render(strings.Repeat("─", max(inner, 0))))
	lines = append(lines, r.renderResults(state, inner, height, &frame)...)

	// Push the footer to the bottom
	available := height - 2*padTop
	for len(lines) < available-footerLines {
		lines = append(lines, "")
	}
	lines = append(lines, r.renderFooter(state))

	mainStyle := r.styles.Main.MaxHeight(height)
	frame.View = mainStyle.Render(strings.Join(lines, "\n"))

	if state.SettingsOpen {
		r.renderSettings(state, width, &frame)
	}
	return frame
}

// renderSearchLine renders the prompt, the query field, Clear and the gear
func (r *Renderer) renderSearchLine(state ViewState, inner int, frame *Frame) string {
	left := r.styles.Prompt.Render("⌕") + " " + state.QueryInput
	leftW := lipgloss.Width(left)

	clear := ""
	if state.Query != "" {
		clear = r.styles.Clear.Render("✕ Clear")
	}
	gearStyle := r.styles.Gear
	if state.SettingsOpen {
		gearStyle = r.styles.GearActive
	}
	gear := gearStyle.Render("⚙")

	rightW := lipgloss.Width(gear)
	if clear != "" {
		rightW += lipgloss.Width(clear) + 2
	}
	pad := inner - leftW - rightW
	if pad < 1 {
		pad = 1
	}

	x := padLeft + leftW + pad
	line := left + strings.Repeat(" ", pad)
	if clear != "" {
		clearW := lipgloss.Width(clear)
		frame.Regions = append(frame.Regions, Region{X: x, Y: padTop, W: clearW, H: 1, Target: Target{Kind: TargetClear}})
		line += clear + "  "
		x += clearW + 2
	}
	frame.Regions = append(frame.Regions, Region{X: x, Y: padTop, W: lipgloss.Width(gear), H: 1, Target: Target{Kind: TargetGear}})
	return line + gear
}

// renderTabs renders the tab bar with per-tab counts
func (r *Renderer) renderTabs(state ViewState, frame *Frame) string {
	parts := make([]string, 0, len(domain.Tabs))
	x := padLeft
	for _, tab := range domain.Tabs {
		style, countStyle := r.styles.Tab, r.styles.TabCount
		if tab == state.ActiveTab {
			style, countStyle = r.styles.TabActive, r.styles.TabActive.UnsetPadding()
		}
		label := style.Render(tab.Label() + " " + countStyle.Render(strconv.Itoa(state.Counts.For(tab))))
		w := lipgloss.Width(label)
		frame.Regions = append(frame.Regions, Region{X: x, Y: padTop + 1, W: w, H: 1, Target: Target{Kind: TargetTab, Tab: tab}})
		parts = append(parts, label)
		x += w + 1
	}
	return strings.Join(parts, " ")
}

// renderResults renders the visible page of results or the empty state
func (r *Renderer) renderResults(state ViewState, inner, height int, frame *Frame) []string {
	if len(state.Results) == 0 {
		return []string{"", r.styles.Empty.Render("  ⌕  No results found")}
	}

	page := PageSize(height)
	var lines []string
	end := state.ViewportOffset + page
	if end > len(state.Results) {
		end = len(state.Results)
	}
	for i := state.ViewportOffset; i < end; i++ {
		y := padTop + headerLines + (i-state.ViewportOffset)*RowHeight
		frame.Regions = append(frame.Regions, Region{X: padLeft, Y: y, W: inner, H: RowHeight, Target: Target{Kind: TargetResult, Index: i}})
		lines = append(lines, r.resultRender.RenderResult(state.Results[i], i == state.Cursor, state.Query, inner)...)
	}
	return lines
}

// renderFooter renders the status message or the short help
func (r *Renderer) renderFooter(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Scroll.Render(state.StatusMessage)
	}
	if state.HelpKeys == nil {
		return ""
	}
	return state.HelpModel.View(state.HelpKeys)
}

// renderSettings overlays the popover right-aligned below the search line
func (r *Renderer) renderSettings(state ViewState, width int, frame *Frame) {
	box := r.popupRender.RenderSettings(state.Filters, state.SettingsCursor)
	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)

	x := width - padLeft - boxW
	if x < 0 {
		x = 0
	}
	y := padTop + 1

	frame.View = r.popupRender.RenderPopupOverlay(frame.View, box, x, y)
	frame.Regions = append(frame.Regions, Region{X: x, Y: y, W: boxW, H: boxH, Target: Target{Kind: TargetPopover}})
	for i, toggle := range domain.Toggles {
		frame.Regions = append(frame.Regions, Region{
			X: x, Y: y + 1 + i, W: boxW, H: 1,
			Target: Target{Kind: TargetToggle, Category: toggle.Category},
		})
	}
}
