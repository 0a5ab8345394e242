package domain

import "fmt"

// Tab is the mutually exclusive view selector
type Tab string

const (
	TabAll    Tab = "all"
	TabFiles  Tab = "files"
	TabPeople Tab = "people"
)

// Tabs lists the tabs in display order
var Tabs = []Tab{TabAll, TabFiles, TabPeople}

// ParseTab converts a string into a Tab
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabAll, TabFiles, TabPeople:
		return Tab(s), nil
	}
	return "", fmt.Errorf("unknown tab %q (want all, files or people)", s)
}

// Label returns the display label of a tab
func (t Tab) Label() string {
	switch t {
	case TabFiles:
		return "Files"
	case TabPeople:
		return "People"
	}
	return "All"
}

// Includes reports whether a result of category c belongs on the tab
func (t Tab) Includes(c Category) bool {
	switch t {
	case TabFiles:
		return c == CategoryFiles
	case TabPeople:
		return c == CategoryPeople
	}
	return true
}

// Next returns the tab to the right, wrapping around
func (t Tab) Next() Tab {
	return Tabs[(t.index()+1)%len(Tabs)]
}

// Prev returns the tab to the left, wrapping around
func (t Tab) Prev() Tab {
	return Tabs[(t.index()+len(Tabs)-1)%len(Tabs)]
}

func (t Tab) index() int {
	for i, tab := range Tabs {
		if tab == t {
			return i
		}
	}
	return 0
}

// ContentFilters gates categories independently of the query.
// Chats and lists have no field: they are always disabled.
type ContentFilters struct {
	Files  bool
	People bool
}

// DefaultContentFilters has every toggleable category enabled
func DefaultContentFilters() ContentFilters {
	return ContentFilters{Files: true, People: true}
}

// Enabled reports whether results of category c may be shown
func (f ContentFilters) Enabled(c Category) bool {
	switch c {
	case CategoryFiles:
		return f.Files
	case CategoryPeople:
		return f.People
	}
	return false
}

// Toggle describes one row of the settings popover
type Toggle struct {
	Category Category
	Disabled bool
	apply    func(ContentFilters) ContentFilters
}

// Apply returns the filters after activating this toggle
func (t Toggle) Apply(f ContentFilters) ContentFilters {
	return t.apply(f)
}

func inert(f ContentFilters) ContentFilters { return f }

// Toggles are the popover rows in display order
var Toggles = []Toggle{
	{Category: CategoryFiles, apply: func(f ContentFilters) ContentFilters { f.Files = !f.Files; return f }},
	{Category: CategoryPeople, apply: func(f ContentFilters) ContentFilters { f.People = !f.People; return f }},
	{Category: CategoryChats, Disabled: true, apply: inert},
	{Category: CategoryLists, Disabled: true, apply: inert},
}

// ToggleFor returns the popover toggle bound to category c
func ToggleFor(c Category) (Toggle, bool) {
	for _, t := range Toggles {
		if t.Category == c {
			return t, true
		}
	}
	return Toggle{}, false
}
