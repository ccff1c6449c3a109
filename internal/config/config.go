// Package config loads process settings from the environment and the scene from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	// APIKey guards mutating farm endpoints when set. Empty leaves the API open.
	APIKey         string
	TrustedProxies []string

	// FarmConfigPath points at the YAML scene description
	FarmConfigPath string

	GrowthTickInterval    time.Duration
	ProximityTickInterval time.Duration
	ViewportWidth         int
	ViewportHeight        int

	// BareHandClearsPlant keeps the hand tool's habit of clearing nearby planted flags
	BareHandClearsPlant bool

	EventLogSize    int
	EventLogMaxAge  time.Duration
	SSEKeepalive    time.Duration
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:              getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:             getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:                getEnv(EnvLogDir, DefaultLogDir),
		ServiceName:           getEnv(EnvServiceName, DefaultServiceName),
		Version:               getEnv(EnvVersion, DefaultVersion),
		Environment:           getEnv(EnvEnvironment, DefaultEnvironment),
		APIKey:                getEnv(EnvAPIKey, ""),
		TrustedProxies:        getEnvAsList(EnvTrustedProxies),
		FarmConfigPath:        getEnv(EnvFarmConfigPath, ConfigPathFarm),
		GrowthTickInterval:    getEnvAsDuration(EnvGrowthTickInterval, DefaultGrowthTickInterval),
		ProximityTickInterval: getEnvAsDuration(EnvProximityTickInterval, DefaultProximityTickInterval),
		ViewportWidth:         getEnvAsInt(EnvViewportWidth, DefaultViewportWidth),
		ViewportHeight:        getEnvAsInt(EnvViewportHeight, DefaultViewportHeight),
		BareHandClearsPlant:   getEnvAsBool(EnvBareHandClearsPlant, DefaultBareHandClearsPlant),
		EventLogSize:          getEnvAsInt(EnvEventLogSize, DefaultEventLogSize),
		EventLogMaxAge:        getEnvAsDuration(EnvEventLogMaxAge, DefaultEventLogMaxAge),
		SSEKeepalive:          getEnvAsDuration(EnvSSEKeepalive, DefaultSSEKeepalive),
		ShutdownTimeout:       getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts anything strconv.ParseBool does
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string such as "500ms"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
