package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
)

type staticState struct {
	snap domain.Snapshot
}

func (s staticState) Snapshot() domain.Snapshot { return s.snap }

func waitForViewers(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Viewers() == n }, time.Second, time.Millisecond)
}

func TestHub_FilteredBroadcast(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Join(nil)
	onlyReady := hub.Join([]string{domain.EventTypePlantReady})
	waitForViewers(t, hub, 2)

	require.True(t, hub.Broadcast("e1", domain.EventTypeToolSelected, time.Now(), nil))
	require.True(t, hub.Broadcast("e2", domain.EventTypePlantReady, time.Now(), nil))

	got := <-all.Events
	assert.Equal(t, "e1", got.ID)
	got = <-all.Events
	assert.Equal(t, "e2", got.ID)

	got = <-onlyReady.Events
	assert.Equal(t, "e2", got.ID)
	select {
	case extra := <-onlyReady.Events:
		t.Fatalf("unexpected event %s", extra.Type)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHub_LeaveAndStop(t *testing.T) {
	hub := NewHub()
	hub.Start()

	c := hub.Join(nil)
	waitForViewers(t, hub, 1)
	hub.Leave(c.ID)
	waitForViewers(t, hub, 0)

	_, open := <-c.Events
	assert.False(t, open)

	remaining := hub.Join(nil)
	waitForViewers(t, hub, 1)
	hub.Stop()
	hub.Stop()

	_, open = <-remaining.Events
	assert.False(t, open)
}

func TestEncode(t *testing.T) {
	msg, err := Encode(Event{ID: "abc", Type: "farm.plant.ready", Timestamp: 1})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: farm.plant.ready\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestEncode_OmitsEmptyID(t *testing.T) {
	msg, err := Encode(Event{Type: EventTypeKeepalive, Timestamp: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "event: keepalive\ndata: {"))
}

func TestParseTypes(t *testing.T) {
	assert.Nil(t, parseTypes(""))
	assert.Equal(t, []string{"a", "b"}, parseTypes(" a ,, b,"))
}

func TestHub_SlowViewerDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	slow := hub.Join(nil)
	waitForViewers(t, hub, 1)

	for i := 0; i < ClientEventBuffer+5; i++ {
		require.True(t, hub.Broadcast("", domain.EventTypeToolSelected, time.Now(), nil))
	}

	require.Eventually(t, func() bool { return slow.Dropped() == 5 }, time.Second, time.Millisecond)
	assert.Len(t, slow.Events, ClientEventBuffer)
}

func TestHub_JoinAfterStop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	v := hub.Join(nil)
	_, open := <-v.Events
	assert.False(t, open)
}

func TestSubscriber_BridgesFarmEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	state := staticState{snap: domain.Snapshot{Coins: 30}}
	NewSubscriber(hub, bus, state).Subscribe()

	client := hub.Join(nil)
	waitForViewers(t, hub, 1)

	evt := event.NewPlantHarvestedEvent(time.Now(), domain.Plant{ID: "plant-9"}, 10, 30, 3)
	require.NoError(t, bus.Publish(context.Background(), evt))

	got := <-client.Events
	assert.Equal(t, evt.ID, got.ID)
	assert.Equal(t, domain.EventTypePlantHarvested, got.Type)

	payload, ok := got.Payload.(FarmChangePayload)
	require.True(t, ok)
	require.NotNil(t, payload.Snapshot)
	assert.Equal(t, 30, payload.Snapshot.Coins)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub, time.Hour))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=farm.tool.selected", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	first := readEvent(t, reader)
	assert.Equal(t, EventTypeConnected, first.Type)

	waitForViewers(t, hub, 1)
	hub.Broadcast("", domain.EventTypeCropSelected, time.Now(), nil)
	hub.Broadcast("tool-1", domain.EventTypeToolSelected, time.Now(), map[string]string{"tool": "water"})

	next := readEvent(t, reader)
	assert.Equal(t, "tool-1", next.ID)
	assert.Equal(t, domain.EventTypeToolSelected, next.Type)
}

// readEvent reads one "id/event/data" block and decodes its data line
func readEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	var evt Event
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return evt
		}
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			require.NoError(t, json.Unmarshal([]byte(data), &evt))
		}
	}
}
