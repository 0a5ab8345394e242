package handlers

import (
	"fmt"

	"searchpanel/internal/domain"
	"searchpanel/internal/eventbus"
)

// Logger is the subset of *log.Logger the event handler writes to
type Logger interface {
	Printf(format string, v ...any)
}

// EventHandler writes domain events to a log
type EventHandler struct {
	logger Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(logger Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

// Attach subscribes the handler to every event type on bus
func (h *EventHandler) Attach(bus eventbus.EventBus) {
	for _, eventType := range domain.AllEventTypes {
		bus.Subscribe(eventType, h.HandleEvent)
	}
}

// HandleEvent logs one event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	h.logger.Printf("%s", Describe(event))
}

// Describe returns a one-line description of an event
func Describe(event eventbus.DomainEvent) string {
	switch e := event.(type) {
	case eventbus.QueryChangedEvent:
		return fmt.Sprintf("query changed to %q", e.Query)

	case eventbus.QueryClearedEvent:
		return "query cleared"

	case eventbus.TabSelectedEvent:
		return fmt.Sprintf("tab %s selected", e.Tab)

	case eventbus.FilterToggledEvent:
		state := "off"
		if e.Enabled {
			state = "on"
		}
		return fmt.Sprintf("filter %s turned %s", e.Category, state)

	case eventbus.SettingsOpenedEvent:
		return "settings opened"

	case eventbus.SettingsClosedEvent:
		return "settings closed"

	case eventbus.ResultsLoadedEvent:
		return fmt.Sprintf("loaded %d results from %s", e.Count, e.Source)

	case eventbus.ErrorEvent:
		if e.Err != nil {
			return fmt.Sprintf("error: %s: %v", e.Message, e.Err)
		}
		return fmt.Sprintf("error: %s", e.Message)
	}
	return fmt.Sprintf("event %s", event.Type())
}
