package state

import (
	"searchpanel/internal/domain"
)

// Snapshot is a read-only copy of the panel state
type Snapshot struct {
	Query        string
	ActiveTab    domain.Tab
	Filters      domain.ContentFilters
	SettingsOpen bool
}

// PanelState holds the state of the search panel. The four panel slices
// change only through the named transitions below; each transition reports
// whether it changed anything.
type PanelState struct {
	query        string
	activeTab    domain.Tab
	filters      domain.ContentFilters
	settingsOpen bool

	// UI state
	Cursor         int // index into the visible results
	ViewportOffset int // first visible row of the results list
	ViewportHeight int // results that fit in the list
	SettingsCursor int // focused row of the settings popover
	StatusMessage  string
}

// NewPanelState creates the state with the given seed query and tab.
// Content filters start enabled and the popover starts closed.
func NewPanelState(seedQuery string, tab domain.Tab) *PanelState {
	if tab == "" {
		tab = domain.TabAll
	}
	return &PanelState{
		query:     seedQuery,
		activeTab: tab,
		filters:   domain.DefaultContentFilters(),
	}
}

// Snapshot returns the current panel slices
func (s *PanelState) Snapshot() Snapshot {
	return Snapshot{
		Query:        s.query,
		ActiveTab:    s.activeTab,
		Filters:      s.filters,
		SettingsOpen: s.settingsOpen,
	}
}

// Query returns the current query text
func (s *PanelState) Query() string { return s.query }

// ActiveTab returns the selected tab
func (s *PanelState) ActiveTab() domain.Tab { return s.activeTab }

// Filters returns the content filters
func (s *PanelState) Filters() domain.ContentFilters { return s.filters }

// SettingsOpen reports whether the settings popover is visible
func (s *PanelState) SettingsOpen() bool { return s.settingsOpen }

// SetQuery replaces the query text
func (s *PanelState) SetQuery(q string) bool {
	if q == s.query {
		return false
	}
	s.query = q
	s.resetCursor()
	return true
}

// ClearQuery empties the query. Clearing an empty query does nothing.
func (s *PanelState) ClearQuery() bool {
	return s.SetQuery("")
}

// SetTab makes tab the active tab
func (s *PanelState) SetTab(tab domain.Tab) bool {
	if tab == s.activeTab {
		return false
	}
	s.activeTab = tab
	s.resetCursor()
	return true
}

// ToggleFilter activates the popover toggle of category c.
// Disabled categories are bound to a no-op and never report a change.
func (s *PanelState) ToggleFilter(c domain.Category) bool {
	toggle, ok := domain.ToggleFor(c)
	if !ok {
		return false
	}
	next := toggle.Apply(s.filters)
	if next == s.filters {
		return false
	}
	s.filters = next
	s.resetCursor()
	return true
}

// ToggleSettings opens the popover when closed and closes it when open
func (s *PanelState) ToggleSettings() bool {
	s.settingsOpen = !s.settingsOpen
	if s.settingsOpen {
		s.SettingsCursor = 0
	}
	return true
}

// CloseSettings closes the popover if it is open
func (s *PanelState) CloseSettings() bool {
	if !s.settingsOpen {
		return false
	}
	s.settingsOpen = false
	return true
}

// MoveSettingsCursor moves the popover focus by delta rows, wrapping around
func (s *PanelState) MoveSettingsCursor(delta int) {
	n := len(domain.Toggles)
	s.SettingsCursor = ((s.SettingsCursor+delta)%n + n) % n
}

// FocusedToggle returns the popover row under the cursor
func (s *PanelState) FocusedToggle() domain.Toggle {
	return domain.Toggles[s.SettingsCursor]
}

func (s *PanelState) resetCursor() {
	s.Cursor = 0
	s.ViewportOffset = 0
}
