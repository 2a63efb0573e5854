package logic

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultHistorySize bounds how many past queries are kept per session.
const DefaultHistorySize = 50

// History remembers recent search queries in most-recently-used order.
// It lives for the session only and is never persisted.
type History struct {
	cache *lru.Cache[string, struct{}]
}

// NewHistory creates a history holding at most capacity queries.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistorySize
	}
	cache, _ := lru.New[string, struct{}](capacity)
	return &History{cache: cache}
}

// Add records a query. Re-adding an existing query bumps it to most
// recent; blank queries are ignored.
func (h *History) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	h.cache.Add(query, struct{}{})
}

// Entries returns the stored queries, most recent first.
func (h *History) Entries() []string {
	keys := h.cache.Keys() // oldest to newest
	out := make([]string, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		out = append(out, keys[i])
	}
	return out
}

// Len returns the number of stored queries.
func (h *History) Len() int {
	return h.cache.Len()
}
