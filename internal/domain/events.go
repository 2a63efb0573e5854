package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested       EventType = "SearchRequested"
	EventSearchCancelRequested EventType = "SearchCancelRequested"
	EventSearchStarted         EventType = "SearchStarted"
	EventMatchFound            EventType = "MatchFound"
	EventSearchCompleted       EventType = "SearchCompleted"
	EventError                 EventType = "Error"
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent asks the search service to start a new search.
type SearchRequestedEvent struct {
	Request SearchRequest
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCancelRequestedEvent asks the search service to cancel the active
// search.
type SearchCancelRequestedEvent struct{}

func (e SearchCancelRequestedEvent) Type() EventType { return EventSearchCancelRequested }

// SearchStartedEvent is emitted when a search worker begins walking.
// SearchID identifies the generation of the stream; consumers drop events
// whose ID is not the one they are currently rendering.
type SearchStartedEvent struct {
	SearchID uint64
	Roots    []string
	Query    string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// MatchFoundEvent carries one result from the worker to the shell.
type MatchFoundEvent struct {
	SearchID uint64
	Match    MatchResult
}

func (e MatchFoundEvent) Type() EventType { return EventMatchFound }

// SearchCompletedEvent is emitted when a search finishes, naturally or
// after cancellation.
type SearchCompletedEvent struct {
	SearchID   uint64
	MatchCount int
	Elapsed    time.Duration
	Cancelled  bool
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DefaultRoot string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
