package farm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// seqRand replays values in order, then returns fallback forever
type seqRand struct {
	mu       sync.Mutex
	values   []float64
	fallback float64
}

func (r *seqRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return r.fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// noFlags never rolls a soil flag
func noFlags() *seqRand {
	return &seqRand{fallback: 0.99}
}

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = string(e.Type)
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type fixture struct {
	store *Store
	clock *clockwork.FakeClock
	rand  *seqRand
	rec   *recorder
}

func newFixture(t *testing.T, bareHandClears bool) *fixture {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testStart)
	rng := noFlags()
	rec := &recorder{}
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, rec.handle)

	return &fixture{
		store: NewStore(Options{
			Clock:               clock,
			Rand:                rng,
			IDs:                 SequenceGenerator(),
			Bus:                 bus,
			BareHandClearsPlant: bareHandClears,
		}),
		clock: clock,
		rand:  rng,
		rec:   rec,
	}
}

// tileAt builds a 50px tile with its top-left corner at x, y
func tileAt(id string, x, y float64, status domain.TileStatus) domain.SoilTile {
	return domain.SoilTile{ID: id, X: x, Y: y, CenterX: x + 25, CenterY: y + 25, Status: status}
}
