package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security log messages
const (
	LogMsgRepeatedBadKey  = "Repeated bad API key"
	LogMsgRateLimited     = "Request budget exhausted"
	LogMsgBadTrustedProxy = "Ignoring unparsable trusted proxy"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderRetryAfter     = "Retry-After"
)

// securityHeaders are set on every response
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "SAMEORIGIN"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
}

// Limits
const (
	MaxRequestBodyBytes = 1 << 20 // 1MB
	ReadHeaderTimeout   = 5 * time.Second

	// Requests allowed per client IP in each window. Held movement keys send a lot.
	RateLimitRequests = 30000
	RateLimitWindow   = 5 * time.Minute
	RateLimitLogEvery = 100
	RetryAfterSeconds = "60"
	FailedAuthAlertAt = 5
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
