package eventlog

// DefaultSize is used when a non-positive journal size is configured
const DefaultSize = 200

// Log messages
const (
	LogMsgEventEvicted        = "Oldest journal entry evicted"
	LogMsgCleanupJobCompleted = "Event journal cleanup completed"
)
