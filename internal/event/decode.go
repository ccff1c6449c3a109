package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. Events published on the MemoryBus carry
// T (or *T) directly; payloads that went through JSON, such as journal entries echoed
// back by a client, arrive as generic maps and are converted.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch v := payload.(type) {
	case nil:
		return out, ErrNilPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, ErrNilPayload
		}
		return *v, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encode %T payload: %w", payload, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode payload into %T: %w", out, err)
	}
	return out, nil
}
