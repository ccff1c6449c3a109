package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler serves the farm event stream. ?types=a,b limits it to those event types.
func Handler(hub *Hub, keepalive time.Duration) http.HandlerFunc {
	if keepalive <= 0 {
		keepalive = KeepaliveInterval
	}
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("Access-Control-Allow-Origin", "*")

		types := parseTypes(r.URL.Query().Get(QueryParamTypes))
		viewer := hub.Join(types)
		slog.Info(LogMsgClientConnected, "viewer_id", viewer.ID, "types", types, "viewers", hub.Viewers())
		defer func() {
			hub.Leave(viewer.ID)
			slog.Info(LogMsgClientDisconnected,
				"viewer_id", viewer.ID,
				"dropped", viewer.Dropped(),
				"viewers", hub.Viewers())
		}()

		send := func(e Event) bool {
			msg, err := Encode(e)
			if err != nil {
				slog.Error(LogMsgWriteError, "viewer_id", viewer.ID, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "viewer_id", viewer.ID, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		hello := Event{
			ID:        viewer.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().UnixMilli(),
			Payload:   ConnectedPayload{ClientID: viewer.ID, Filters: types},
		}
		if !send(hello) {
			return
		}

		ping := time.NewTicker(keepalive)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-hub.Done():
				return
			case e, open := <-viewer.Events:
				if !open || !send(e) {
					return
				}
			case now := <-ping.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: now.UnixMilli()}) {
					return
				}
			}
		}
	}
}

func parseTypes(raw string) []string {
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
