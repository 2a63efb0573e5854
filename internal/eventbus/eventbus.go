package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"

	"fileseek/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchRequested       = domain.EventSearchRequested
	EventSearchCancelRequested = domain.EventSearchCancelRequested
	EventSearchStarted         = domain.EventSearchStarted
	EventMatchFound            = domain.EventMatchFound
	EventSearchCompleted       = domain.EventSearchCompleted
	EventError                 = domain.EventError
	EventConfigLoaded          = domain.EventConfigLoaded
	EventConfigSaved           = domain.EventConfigSaved
)

// Re-export domain event types
type SearchRequestedEvent = domain.SearchRequestedEvent
type SearchCancelRequestedEvent = domain.SearchCancelRequestedEvent
type SearchStartedEvent = domain.SearchStartedEvent
type MatchFoundEvent = domain.MatchFoundEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType]map[int]EventHandler
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType]map[int]EventHandler),
		eventChan: make(chan DomainEvent, 1024),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. It blocks while the buffer
// is full so a match stream is never dropped; after Close it returns without
// delivering.
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventMatchFound:
	default:
		slog.Debug("publishing event", "type", event.Type())
	}

	select {
	case b.eventChan <- event:
	case <-b.quit:
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]EventHandler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
}

// Close stops dispatching. Events still buffered are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch delivers events to subscribers. Handlers run synchronously, in
// subscription order, so events are observed in the order they were
// published.
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)
		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	registered := b.handlers[event.Type()]
	ids := make([]int, 0, len(registered))
	for id := range registered {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	// Make a copy to avoid holding the lock during handler execution
	handlersCopy := make([]EventHandler, 0, len(ids))
	for _, id := range ids {
		handlersCopy = append(handlersCopy, registered[id])
	}
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("event handler panic",
						"type", event.Type(), "panic", r, "stack", string(debug.Stack()))
				}
			}()
			handler(event)
		}()
	}
}
