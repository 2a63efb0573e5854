package state

import (
	"time"

	"fileseek/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Result data
	Results    []domain.MatchResult
	MaxResults int  // cap on stored results, 0 means unbounded
	Truncated  bool // true when matches beyond MaxResults were dropped

	// Active search
	CurrentSearchID uint64
	Searching       bool
	Cancelling      bool
	MatchCount      int // reported by the worker, may exceed len(Results)
	Roots           []string
	Query           string
	SearchStart     time.Time
	Elapsed         time.Duration // set when the search completes

	// UI state
	ShowHelp      bool
	ShowDetail    bool
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState(maxResults int) *AppState {
	return &AppState{
		Results:    make([]domain.MatchResult, 0),
		MaxResults: maxResults,
	}
}

// BeginSearch resets the result set for a new search generation. Events
// still in flight from an older generation carry a smaller ID and are
// ignored from here on.
func (s *AppState) BeginSearch(id uint64, roots []string, query string) {
	s.CurrentSearchID = id
	s.Searching = true
	s.Cancelling = false
	s.MatchCount = 0
	s.Truncated = false
	s.Results = s.Results[:0]
	s.Roots = roots
	s.Query = query
	s.SearchStart = time.Now()
	s.Elapsed = 0
}

// AddResult appends a match if it belongs to the current search. It
// reports whether the result list changed.
func (s *AppState) AddResult(id uint64, match domain.MatchResult) bool {
	if id != s.CurrentSearchID {
		return false
	}
	s.MatchCount++
	if s.MaxResults > 0 && len(s.Results) >= s.MaxResults {
		s.Truncated = true
		return false
	}
	s.Results = append(s.Results, match)
	return true
}

// CompleteSearch finalizes the current search. Completions of superseded
// searches are ignored; it reports whether the state changed.
func (s *AppState) CompleteSearch(id uint64, matchCount int, elapsed time.Duration, cancelled bool) bool {
	if id != s.CurrentSearchID {
		return false
	}
	s.Searching = false
	s.Cancelling = false
	s.MatchCount = matchCount
	s.Elapsed = elapsed
	return true
}

// RequestCancel flags the active search as cancelling so the UI can show
// it, without touching the results collected so far.
func (s *AppState) RequestCancel() {
	if s.Searching {
		s.Cancelling = true
	}
}

// ResultAt returns the match at index, if any.
func (s *AppState) ResultAt(index int) (domain.MatchResult, bool) {
	if index < 0 || index >= len(s.Results) {
		return domain.MatchResult{}, false
	}
	return s.Results[index], true
}

// SetStatus sets the status bar message.
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status bar message.
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
