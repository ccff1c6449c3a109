package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMeoFarm     = "Starting MeoFarm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Farm Initialization
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgSceneLoaded            = "Scene loaded"
	LogMsgFarmInitialized        = "Farm initialized"

	ErrMsgFailedLoadScene     = "failed to load scene config"
	ErrMsgFailedBuildLayout   = "failed to build layout for configured viewport"
	ErrMsgFailedCreateJournal = "failed to create event journal"
)

// =============================================================================
// Background Drivers
// =============================================================================

const (
	// DriverWorkers is one so growth and proximity passes never overlap
	DriverWorkers = 1

	// DriverQueueSize leaves one slot per scheduled job
	DriverQueueSize = 3

	// JournalCleanupInterval is how often expired journal entries are dropped
	JournalCleanupInterval = time.Minute

	JobNameGrowth         = "growth"
	JobNameProximity      = "proximity"
	JobNameJournalCleanup = "journal_cleanup"

	LogMsgDriversStarted = "Background drivers started"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventJournalSubscribed     = "Event journal subscribed"
	LogMsgStreamSubscriberRegistered = "Stream subscriber registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingDrivers      = "Stopping background drivers..."
	LogMsgClosingStreams       = "Closing event streams..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
