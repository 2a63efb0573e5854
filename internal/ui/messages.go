package ui

import (
	"time"

	"fileseek/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying a path to the clipboard
type clipboardMsg struct {
	path string
	err  error
}

// openFolderMsg contains the result of revealing a result in the file manager
type openFolderMsg struct {
	path string
	err  error
}

// searchSetupErrMsg reports a request that was rejected before it
// reached the worker, e.g. an invalid extension list
type searchSetupErrMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
