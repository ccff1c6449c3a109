// Package sse streams farm changes to browser clients as server-sent events.
package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is one frame on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Viewer is one open stream. Events is closed when the viewer leaves or the hub stops.
type Viewer struct {
	ID     string
	Events <-chan Event

	out     chan Event
	types   map[string]struct{} // empty: every type
	dropped atomic.Int64
}

func newViewer(types []string) *Viewer {
	out := make(chan Event, ClientEventBuffer)
	v := &Viewer{ID: uuid.New().String(), Events: out, out: out}
	if len(types) > 0 {
		v.types = make(map[string]struct{}, len(types))
		for _, t := range types {
			v.types[t] = struct{}{}
		}
	}
	return v
}

// Wants reports whether the viewer asked for eventType
func (v *Viewer) Wants(eventType string) bool {
	if len(v.types) == 0 {
		return true
	}
	_, ok := v.types[eventType]
	return ok
}

// Dropped counts events skipped because the viewer was not reading fast enough
func (v *Viewer) Dropped() int64 {
	return v.dropped.Load()
}

// offer never blocks; a stalled browser must not hold up the farm
func (v *Viewer) offer(e Event) {
	select {
	case v.out <- e:
	default:
		v.dropped.Add(1)
	}
}

// Hub fans farm events out to every open stream. One goroutine owns the viewer set;
// the read lock only serves Viewers().
type Hub struct {
	mu      sync.RWMutex
	viewers map[string]*Viewer

	events chan Event
	joins  chan *Viewer
	leaves chan string

	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		viewers: make(map[string]*Viewer),
		events:  make(chan Event, BroadcastBufferSize),
		joins:   make(chan *Viewer, ClientChannelBuffer),
		leaves:  make(chan string, ClientChannelBuffer),
		quit:    make(chan struct{}),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.loop()
}

// Stop ends the loop and closes every viewer's channel. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.quit)
		h.wg.Wait()

		h.mu.Lock()
		for id, v := range h.viewers {
			close(v.out)
			delete(h.viewers, id)
		}
		h.mu.Unlock()

		// joins that arrived after the loop exited
		for {
			select {
			case v := <-h.joins:
				close(v.out)
			default:
				return
			}
		}
	})
}

// Done is closed once Stop begins
func (h *Hub) Done() <-chan struct{} {
	return h.quit
}

func (h *Hub) loop() {
	defer h.wg.Done()

	for {
		select {
		case <-h.quit:
			return

		case v := <-h.joins:
			h.mu.Lock()
			h.viewers[v.ID] = v
			h.mu.Unlock()

		case id := <-h.leaves:
			h.mu.Lock()
			if v, ok := h.viewers[id]; ok {
				delete(h.viewers, id)
				close(v.out)
			}
			h.mu.Unlock()

		case e := <-h.events:
			h.mu.RLock()
			for _, v := range h.viewers {
				if v.Wants(e.Type) {
					v.offer(e)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Join opens a stream for the given event types; none means every type.
// After Stop the returned viewer's channel is already closed.
func (h *Hub) Join(types []string) *Viewer {
	v := newViewer(types)
	select {
	case h.joins <- v:
	case <-h.quit:
		close(v.out)
	}
	return v
}

// Leave closes the viewer's stream
func (h *Hub) Leave(id string) {
	select {
	case h.leaves <- id:
	case <-h.quit:
	}
}

// Broadcast queues a frame for every interested viewer. An empty id gets a fresh one.
// Returns false when the queue is full and the frame was dropped.
func (h *Hub) Broadcast(id, eventType string, at time.Time, payload interface{}) bool {
	if id == "" {
		id = uuid.New().String()
	}
	e := Event{ID: id, Type: eventType, Timestamp: at.UnixMilli(), Payload: payload}

	select {
	case h.events <- e:
		return true
	default:
		return false
	}
}

// Viewers returns how many streams are open
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Encode renders e in the text/event-stream wire format
func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", e.Type, err)
	}

	var buf bytes.Buffer
	if e.ID != "" {
		fmt.Fprintf(&buf, "id: %s\n", e.ID)
	}
	fmt.Fprintf(&buf, "event: %s\ndata: %s\n\n", e.Type, data)
	return buf.Bytes(), nil
}
