package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"fileseek/internal/domain"
	"fileseek/internal/eventbus"
)

// Service runs file-name searches in the background and streams results
// over the event bus.
type Service interface {
	StartSearch(ctx context.Context, req domain.SearchRequest) (*Handle, error)
	StopSearch()
}

// Handle represents one in-flight search. It owns the cancellation flag,
// which is write-once: Cancel may be called from any goroutine, including
// while the worker reads the flag.
type Handle struct {
	id        uint64
	cancelled atomic.Bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// ID returns the generation number of this search. Stream events carry it
// so consumers can discard output of superseded searches.
func (h *Handle) ID() uint64 { return h.id }

// Cancel requests cooperative cancellation. Safe to call more than once.
func (h *Handle) Cancel() {
	h.cancelled.Store(true)
	h.cancel()
}

// Cancelled reports whether cancellation has been requested.
func (h *Handle) Cancelled() bool { return h.cancelled.Load() }

// Done is closed once the worker has returned.
func (h *Handle) Done() <-chan struct{} { return h.done }

// searchService is the concrete implementation
type searchService struct {
	bus     eventbus.EventBus
	workers int

	mu      sync.Mutex
	current *Handle
	lastID  uint64
	wg      sync.WaitGroup
}

// NewService creates a new search service. workers bounds how many roots are
// walked concurrently when a request carries more than one root.
func NewService(bus eventbus.EventBus, workers int) Service {
	if workers < 1 {
		workers = 1
	}
	s := &searchService{
		bus:     bus,
		workers: workers,
	}

	// React to requests published by the shell
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			go s.StartSearch(context.Background(), event.Request)
		}
	})
	bus.Subscribe(eventbus.EventSearchCancelRequested, func(e eventbus.DomainEvent) {
		go s.StopSearch()
	})

	return s
}

// StartSearch validates the request, cancels any search still in flight and
// begins a new one. It returns immediately with the new handle; the
// superseded worker drains in the background and its remaining events are
// identified by the old generation number.
func (s *searchService) StartSearch(ctx context.Context, req domain.SearchRequest) (*Handle, error) {
	if err := ValidateRequest(req); err != nil {
		s.bus.Publish(eventbus.ErrorEvent{Message: "invalid search request", Err: err})
		return nil, err
	}

	searchCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.current != nil {
		s.current.Cancel()
	}
	s.lastID++
	handle := &Handle{
		id:     s.lastID,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.current = handle
	s.mu.Unlock()

	s.bus.Publish(eventbus.SearchStartedEvent{
		SearchID: handle.id,
		Roots:    req.Roots,
		Query:    req.Query,
	})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		defer close(handle.done)

		start := time.Now()
		matches := s.run(searchCtx, handle, req)

		s.mu.Lock()
		if s.current == handle {
			s.current = nil
		}
		s.mu.Unlock()

		s.bus.Publish(eventbus.SearchCompletedEvent{
			SearchID:   handle.id,
			MatchCount: matches,
			Elapsed:    time.Since(start),
			Cancelled:  handle.Cancelled(),
		})
	}()

	return handle, nil
}

// StopSearch cancels the active search, if any, and waits for all workers
// to drain.
func (s *searchService) StopSearch() {
	s.mu.Lock()
	if s.current != nil {
		s.current.Cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// run walks the request's roots and returns the number of matches emitted.
// A single root is walked sequentially so results arrive in discovery
// order; multiple roots are walked concurrently, bounded by workers.
func (s *searchService) run(ctx context.Context, handle *Handle, req domain.SearchRequest) int {
	isCancelled := func() bool {
		if handle.Cancelled() {
			return true
		}
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	var matches atomic.Int64
	onMatch := func(m domain.MatchResult) {
		matches.Add(1)
		s.bus.Publish(eventbus.MatchFoundEvent{SearchID: handle.id, Match: m})
	}

	if len(req.Roots) > 1 && s.workers > 1 {
		var g errgroup.Group
		g.SetLimit(s.workers)
		for _, root := range req.Roots {
			g.Go(func() error {
				if !isCancelled() {
					walkRoot(root, req, onMatch, isCancelled)
				}
				return nil
			})
		}
		_ = g.Wait()
	} else {
		Search(req, onMatch, isCancelled)
	}

	return int(matches.Load())
}
