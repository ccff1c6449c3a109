package sse

import "github.com/osse101/MeoFarm_Go/internal/domain"

// FarmChangePayload is the SSE payload for every farm event
type FarmChangePayload struct {
	Change   interface{}      `json:"change"`             // the typed event payload
	Snapshot *domain.Snapshot `json:"snapshot,omitempty"` // state right after the change
}

// ConnectedPayload is sent once when a client connects
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}
