// Package eventlog keeps a bounded in-memory journal of recent farm events.
package eventlog

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// Query filters the journal. Zero values mean no filter.
type Query struct {
	Types []string
	Limit int
}

// Service handles the event journal
type Service interface {
	// Subscribe registers the journal to listen to all farm events
	Subscribe(bus event.Bus)

	// Recent returns matching events, newest first
	Recent(ctx context.Context, q Query) []event.Event

	// CleanupOldEvents drops events older than maxAge and returns how many were removed
	CleanupOldEvents(ctx context.Context, maxAge time.Duration) int

	// Len returns how many events are held
	Len() int
}

type service struct {
	// entries is keyed by event id; Add order is insertion order since nothing calls Get
	entries *lru.Cache[string, event.Event]
	clock   clockwork.Clock
	mu      sync.Mutex
}

// NewService creates a journal holding at most size events
func NewService(size int, clock clockwork.Clock) (Service, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, event.Event](size)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{entries: cache, clock: clock}, nil
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) {
	event.SubscribeAll(bus, s.handleEvent)
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	s.mu.Lock()
	evicted := s.entries.Add(evt.ID, evt)
	s.mu.Unlock()

	if evicted {
		logger.FromContext(ctx).Debug(LogMsgEventEvicted, "type", evt.Type)
	}
	return nil
}

func (s *service) Recent(_ context.Context, q Query) []event.Event {
	s.mu.Lock()
	values := s.entries.Values()
	s.mu.Unlock()

	var allowed map[string]struct{}
	if len(q.Types) > 0 {
		allowed = make(map[string]struct{}, len(q.Types))
		for _, t := range q.Types {
			allowed[t] = struct{}{}
		}
	}

	out := make([]event.Event, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		evt := values[i]
		if allowed != nil {
			if _, ok := allowed[string(evt.Type)]; !ok {
				continue
			}
		}
		out = append(out, evt)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}

func (s *service) CleanupOldEvents(_ context.Context, maxAge time.Duration) int {
	cutoff := s.clock.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, evt := range s.entries.Values() {
		if evt.OccurredAt.Before(cutoff) {
			s.entries.Remove(evt.ID)
			removed++
		}
	}
	return removed
}

func (s *service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}
