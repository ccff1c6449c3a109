package sse

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 100 // frames waiting for the fan-out loop
	ClientEventBuffer   = 50  // frames a viewer may fall behind before drops start
	ClientChannelBuffer = 10  // pending joins and leaves
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// QueryParamTypes is the comma-separated event type filter
	QueryParamTypes = "types"
)

// Event types for SSE that are not farm events
const (
	// EventTypeConnected is sent once on connect
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "SSE not supported"
)

// Log messages
const (
	LogMsgClientConnected    = "Farm stream opened"
	LogMsgClientDisconnected = "Farm stream closed"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
