package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged   EventType = "QueryChanged"
	EventQueryCleared   EventType = "QueryCleared"
	EventTabSelected    EventType = "TabSelected"
	EventFilterToggled  EventType = "FilterToggled"
	EventSettingsOpened EventType = "SettingsOpened"
	EventSettingsClosed EventType = "SettingsClosed"
	EventResultsLoaded  EventType = "ResultsLoaded"
	EventError          EventType = "Error"
)

// AllEventTypes lists every event type, used by subscribers that log everything
var AllEventTypes = []EventType{
	EventQueryChanged,
	EventQueryCleared,
	EventTabSelected,
	EventFilterToggled,
	EventSettingsOpened,
	EventSettingsClosed,
	EventResultsLoaded,
	EventError,
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted when the query text changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// QueryClearedEvent is emitted when the clear action empties the query
type QueryClearedEvent struct{}

func (e QueryClearedEvent) Type() EventType { return EventQueryCleared }

// TabSelectedEvent is emitted when a different tab becomes active
type TabSelectedEvent struct {
	Tab Tab
}

func (e TabSelectedEvent) Type() EventType { return EventTabSelected }

// FilterToggledEvent is emitted when a content filter flips
type FilterToggledEvent struct {
	Category Category
	Enabled  bool
}

func (e FilterToggledEvent) Type() EventType { return EventFilterToggled }

// SettingsOpenedEvent is emitted when the settings popover opens
type SettingsOpenedEvent struct{}

func (e SettingsOpenedEvent) Type() EventType { return EventSettingsOpened }

// SettingsClosedEvent is emitted when the settings popover closes
type SettingsClosedEvent struct{}

func (e SettingsClosedEvent) Type() EventType { return EventSettingsClosed }

// ResultsLoadedEvent is emitted once the result source is ready
type ResultsLoadedEvent struct {
	Source string
	Count  int
}

func (e ResultsLoadedEvent) Type() EventType { return EventResultsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
