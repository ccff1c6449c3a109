package farm

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator returns a new unique plant id on every call
type IDGenerator func() string

// UUIDGenerator returns ids of the form "plant-<uuid>". Unlike timestamp ids,
// two plants created in the same clock tick never collide.
func UUIDGenerator() IDGenerator {
	return func() string {
		return PlantIDPrefix + uuid.NewString()
	}
}

// SequenceGenerator returns ids "plant-1", "plant-2", ... from a monotonic counter
func SequenceGenerator() IDGenerator {
	var n atomic.Uint64
	return func() string {
		return PlantIDPrefix + strconv.FormatUint(n.Add(1), 10)
	}
}
