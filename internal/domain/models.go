package domain

import (
	"sort"
	"strings"
)

// SearchRequest describes one file-name search. It is immutable once a
// search has started.
type SearchRequest struct {
	Roots             []string // directories to walk, in order
	Query             string   // non-empty substring to look for in file names
	CaseSensitive     bool
	AllowedExtensions ExtensionSet // empty means no filter
}

// MatchResult is emitted once per matching file and never mutated afterwards.
// MatchStart and MatchLength are byte offsets into FileName describing the
// first occurrence of the query.
type MatchResult struct {
	FullPath    string
	FileName    string
	MatchStart  int
	MatchLength int
}

// ExtensionSet is a set of file extensions without leading dots, stored
// lower-cased.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from already-validated extension names.
// Leading dots are stripped and names are lower-cased.
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

// IsEmpty reports whether the set imposes no filter.
func (s ExtensionSet) IsEmpty() bool { return len(s) == 0 }

// Contains reports whether ext (without dot, any case) is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}

// Slice returns the extensions sorted, for display and persistence.
func (s ExtensionSet) Slice() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// String renders the set as a comma-separated list.
func (s ExtensionSet) String() string {
	return strings.Join(s.Slice(), ",")
}

// SearchProgress represents the current search state shown in the UI.
type SearchProgress struct {
	IsSearching bool
	MatchCount  int
	CurrentRoot string
}
