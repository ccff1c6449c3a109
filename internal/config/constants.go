package config

import "time"

// ConfigPathFarm is the default scene file
const ConfigPathFarm = "configs/farm.yaml"

// Environment variable names
const (
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvLogDir                = "LOG_DIR"
	EnvServiceName           = "SERVICE_NAME"
	EnvVersion               = "VERSION"
	EnvEnvironment           = "ENVIRONMENT"
	EnvAPIKey                = "API_KEY"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
	EnvFarmConfigPath        = "FARM_CONFIG_PATH"
	EnvGrowthTickInterval    = "GROWTH_TICK_INTERVAL"
	EnvProximityTickInterval = "PROXIMITY_TICK_INTERVAL"
	EnvViewportWidth         = "VIEWPORT_WIDTH"
	EnvViewportHeight        = "VIEWPORT_HEIGHT"
	EnvBareHandClearsPlant   = "BARE_HAND_CLEARS_PLANT"
	EnvEventLogSize          = "EVENT_LOG_SIZE"
	EnvEventLogMaxAge        = "EVENT_LOG_MAX_AGE"
	EnvSSEKeepalive          = "SSE_KEEPALIVE"
	EnvShutdownTimeout       = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort                  = "8080"
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultLogDir                = "logs"
	DefaultServiceName           = "meofarm"
	DefaultVersion               = "dev"
	DefaultEnvironment           = "dev"
	DefaultGrowthTickInterval    = 500 * time.Millisecond
	DefaultProximityTickInterval = 50 * time.Millisecond
	DefaultViewportWidth         = 1280
	DefaultViewportHeight        = 720
	DefaultBareHandClearsPlant   = true
	DefaultEventLogSize          = 200
	DefaultEventLogMaxAge        = 10 * time.Minute
	DefaultSSEKeepalive          = 30 * time.Second
	DefaultShutdownTimeout       = 10 * time.Second
)

// EnvironmentDev is the environment name that relaxes production warnings
const EnvironmentDev = "dev"

// MinTickInterval is the shortest driver interval accepted without a warning
const MinTickInterval = 10 * time.Millisecond
