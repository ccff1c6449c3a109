package event

import "errors"

// EventSchemaVersion is stamped on every farm event. Bump it when a payload changes shape.
const EventSchemaVersion = "1.0"

// ErrNilPayload is returned when decoding an event that carries no payload
var ErrNilPayload = errors.New("event has no payload")

// Log message constants
const (
	LogMsgPublishFailed      = "Failed to publish farm event"
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
