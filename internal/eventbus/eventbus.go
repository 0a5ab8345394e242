package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"searchpanel/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryChanged   = domain.EventQueryChanged
	EventQueryCleared   = domain.EventQueryCleared
	EventTabSelected    = domain.EventTabSelected
	EventFilterToggled  = domain.EventFilterToggled
	EventSettingsOpened = domain.EventSettingsOpened
	EventSettingsClosed = domain.EventSettingsClosed
	EventResultsLoaded  = domain.EventResultsLoaded
	EventError          = domain.EventError
)

// Re-export domain event types
type QueryChangedEvent = domain.QueryChangedEvent
type QueryClearedEvent = domain.QueryClearedEvent
type TabSelectedEvent = domain.TabSelectedEvent
type FilterToggledEvent = domain.FilterToggledEvent
type SettingsOpenedEvent = domain.SettingsOpenedEvent
type SettingsClosedEvent = domain.SettingsClosedEvent
type ResultsLoadedEvent = domain.ResultsLoadedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers for one event run in subscription order on the dispatcher goroutine.
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. It never blocks: when the
// queue is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close delivers the events already queued and stops the dispatcher
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			// Flush whatever was published before Close
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			s.handler(event)
		}()
	}
}
