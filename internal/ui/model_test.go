package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpanel/internal/config"
	"searchpanel/internal/domain"
	"searchpanel/internal/eventbus"
	"searchpanel/internal/fixtures"
	sources "searchpanel/internal/logic"
	"searchpanel/internal/ui/views"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}

func newTestModel(t *testing.T, seed string) (*Model, *recordingBus) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.SeedQuery = seed
	bus := &recordingBus{}
	m := NewModel(bus, cfg, sources.NewMemoryResultStore(fixtures.Default()...))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.View()
	return m, bus
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
		m.View()
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func regionOf(t *testing.T, m *Model, match func(views.Target) bool) views.Region {
	t.Helper()
	for _, r := range m.frame.Regions {
		if match(r.Target) {
			return r
		}
	}
	require.FailNow(t, "region not found")
	return views.Region{}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestTypingFiltersResults(t *testing.T) {
	m, bus := newTestModel(t, "")

	typeText(m, "Randa")
	assert.Equal(t, "Randa", m.State().Query())

	view := m.View()
	assert.Contains(t, view, "Randall Johnsson")
	assert.NotContains(t, view, "Kristinge Karand")
	assert.Contains(t, view, "All 1")

	require.Len(t, bus.events, 5)
	assert.Equal(t, eventbus.QueryChangedEvent{Query: "Randa"}, bus.events[4])
}

func TestSeedQueryWithoutMatchShowsEmptyState(t *testing.T) {
	m, _ := newTestModel(t, "Randl")

	assert.Equal(t, "Randl", m.State().Query())
	assert.Contains(t, m.View(), "No results found")
}

func TestClearQueryKey(t *testing.T) {
	m, bus := newTestModel(t, "Randl")
	press(m, key(tea.KeyCtrlS), key(tea.KeyEsc))
	bus.events = nil

	press(m, key(tea.KeyCtrlL))
	assert.Equal(t, "", m.State().Query())
	assert.Equal(t, "", m.inputHandler.TextInput().Value())
	assert.Equal(t, []eventbus.DomainEvent{eventbus.QueryClearedEvent{}}, bus.events)
	assert.Contains(t, m.View(), "All 5")

	// Nothing left to clear
	press(m, key(tea.KeyCtrlL))
	assert.Len(t, bus.events, 1)
}

func TestTabKeys(t *testing.T) {
	m, _ := newTestModel(t, "")

	press(m, key(tea.KeyTab))
	assert.Equal(t, domain.TabFiles, m.State().ActiveTab())
	assert.NotContains(t, m.View(), "Randall Johnsson")

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3"), Alt: true})
	assert.Equal(t, domain.TabPeople, m.State().ActiveTab())
	assert.Equal(t, "", m.State().Query())
}

func TestSettingsKeys(t *testing.T) {
	m, bus := newTestModel(t, "")

	press(m, key(tea.KeyCtrlS))
	require.True(t, m.State().SettingsOpen())

	typeText(m, "f")
	assert.False(t, m.State().Filters().Files)
	assert.True(t, m.State().SettingsOpen())
	assert.Equal(t, "", m.State().Query())

	// chats row: disabled, space does nothing
	press(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeySpace))
	assert.Equal(t, domain.ContentFilters{Files: false, People: true}, m.State().Filters())

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.SettingsOpenedEvent{},
		eventbus.FilterToggledEvent{Category: domain.CategoryFiles, Enabled: false},
	}, bus.events)

	// Esc closes the popover without quitting
	cmd := press(m, key(tea.KeyEsc))
	assert.False(t, m.State().SettingsOpen())
	assert.False(t, isQuit(cmd))
	assert.NotContains(t, m.View(), "creative_file_frankies.jpg")
}

func TestUnboundKeyClosesSettingsWithoutTyping(t *testing.T) {
	m, _ := newTestModel(t, "")

	press(m, key(tea.KeyCtrlS))
	typeText(m, "x")

	assert.False(t, m.State().SettingsOpen())
	assert.Equal(t, "", m.State().Query())

	// Back in query mode, typing edits the query again
	typeText(m, "x")
	assert.Equal(t, "x", m.State().Query())
}

func TestEscQuits(t *testing.T) {
	m, _ := newTestModel(t, "")
	assert.True(t, isQuit(press(m, key(tea.KeyEsc))))
}

func TestNavigationKeys(t *testing.T) {
	m, _ := newTestModel(t, "")

	press(m, key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 2, m.State().Cursor)

	press(m, key(tea.KeyEnd))
	assert.Equal(t, 4, m.State().Cursor)

	// Changing the query resets the cursor
	typeText(m, "r")
	assert.Equal(t, 0, m.State().Cursor)
}

func TestPagingFollowsWindowHeight(t *testing.T) {
	m, _ := newTestModel(t, "")
	press(m, tea.WindowSizeMsg{Width: 80, Height: 10})
	require.Equal(t, 2, m.State().ViewportHeight)

	press(m, key(tea.KeyPgDown))
	assert.Equal(t, 2, m.State().Cursor)
	assert.Equal(t, 1, m.State().ViewportOffset)
}

func TestMouseSelectsTabAndClears(t *testing.T) {
	m, _ := newTestModel(t, "kr")

	files := regionOf(t, m, func(tg views.Target) bool { return tg.Kind == views.TargetTab && tg.Tab == domain.TabFiles })
	press(m, click(files.X, files.Y))
	assert.Equal(t, domain.TabFiles, m.State().ActiveTab())

	clear := regionOf(t, m, func(tg views.Target) bool { return tg.Kind == views.TargetClear })
	press(m, click(clear.X, clear.Y))
	assert.Equal(t, "", m.State().Query())
	assert.Equal(t, domain.TabFiles, m.State().ActiveTab())
}

func TestMouseSettingsPopover(t *testing.T) {
	m, _ := newTestModel(t, "")

	gear := regionOf(t, m, func(tg views.Target) bool { return tg.Kind == views.TargetGear })
	press(m, click(gear.X, gear.Y))
	require.True(t, m.State().SettingsOpen())

	people := regionOf(t, m, func(tg views.Target) bool {
		return tg.Kind == views.TargetToggle && tg.Category == domain.CategoryPeople
	})
	press(m, click(people.X+1, people.Y))
	assert.False(t, m.State().Filters().People)
	assert.True(t, m.State().SettingsOpen())

	lists := regionOf(t, m, func(tg views.Target) bool {
		return tg.Kind == views.TargetToggle && tg.Category == domain.CategoryLists
	})
	press(m, click(lists.X+1, lists.Y))
	assert.Equal(t, domain.ContentFilters{Files: true, People: false}, m.State().Filters())

	// A click outside closes the popover and does nothing else
	tab := regionOf(t, m, func(tg views.Target) bool { return tg.Kind == views.TargetTab && tg.Tab == domain.TabPeople })
	press(m, click(tab.X, tab.Y))
	assert.False(t, m.State().SettingsOpen())
	assert.Equal(t, domain.TabAll, m.State().ActiveTab())
}

func TestMouseWheelScrolls(t *testing.T) {
	m, _ := newTestModel(t, "")

	press(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, m.State().Cursor)

	result := regionOf(t, m, func(tg views.Target) bool { return tg.Kind == views.TargetResult && tg.Index == 3 })
	press(m, click(result.X, result.Y))
	assert.Equal(t, 3, m.State().Cursor)
}

func TestHelpPagerErrorSetsStatus(t *testing.T) {
	m, _ := newTestModel(t, "")

	_, cmd := m.Update(helpPagerMsg{err: assert.AnError})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Help unavailable")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, m.View(), "Help unavailable")
}
