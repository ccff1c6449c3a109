package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Farm metric names
const (
	MetricNamePlantsPlanted      = "farm_plants_planted_total"
	MetricNamePlantsReady        = "farm_plants_ready_total"
	MetricNamePlantsHarvested    = "farm_plants_harvested_total"
	MetricNameCoinsEarned        = "farm_coins_earned_total"
	MetricNameTileEffects        = "farm_tile_effects_total"
	MetricNameDriverTickDuration = "farm_driver_tick_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Farm metric help text
const (
	HelpTextPlantsPlanted      = "Total number of crops planted"
	HelpTextPlantsReady        = "Total number of plants that finished growing"
	HelpTextPlantsHarvested    = "Total number of plants harvested"
	HelpTextCoinsEarned        = "Total coins earned from harvests"
	HelpTextTileEffects        = "Total number of soil tile changes made by tools"
	HelpTextDriverTickDuration = "Time spent in one growth or proximity tick in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCrop   = "crop"
	LabelTool   = "tool"
	LabelDriver = "driver"
)

// Driver label values
const (
	DriverGrowth    = "growth"
	DriverProximity = "proximity"
)

// PathUnmatched labels requests no route matched, keeping label cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DriverTickBuckets covers in-memory passes over a small farm: 10µs to 50ms
var DriverTickBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)
