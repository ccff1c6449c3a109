package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// IPResolver finds the player's address, honouring X-Forwarded-For only from listed proxies.
// Entries may be single addresses or CIDR ranges; unparsable entries are skipped.
type IPResolver struct {
	trusted []netip.Prefix
}

func NewIPResolver(trustedProxies []string) IPResolver {
	var res IPResolver
	for _, p := range trustedProxies {
		if prefix, err := netip.ParsePrefix(p); err == nil {
			res.trusted = append(res.trusted, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(p); err == nil {
			res.trusted = append(res.trusted, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		slog.Warn(LogMsgBadTrustedProxy, "entry", p)
	}
	return res
}

func (res IPResolver) resolve(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !res.trusts(host) {
		return host
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return host
	}
	// the last hop is the one our proxy saw
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func (res IPResolver) trusts(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range res.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// visitor is one address's activity inside the current window
type visitor struct {
	requests  int
	badKeyHit int
}

// Gatekeeper counts requests and bad API keys per address over a fixed window.
type Gatekeeper struct {
	mu          sync.Mutex
	clock       clockwork.Clock
	limit       int
	window      time.Duration
	windowStart time.Time
	visitors    map[string]*visitor
}

// NewGatekeeper uses the default per-address budget
func NewGatekeeper() *Gatekeeper {
	return newGatekeeper(clockwork.NewRealClock(), RateLimitRequests, RateLimitWindow)
}

func newGatekeeper(clock clockwork.Clock, limit int, window time.Duration) *Gatekeeper {
	return &Gatekeeper{
		clock:       clock,
		limit:       limit,
		window:      window,
		windowStart: clock.Now(),
		visitors:    make(map[string]*visitor),
	}
}

// visitorLocked rolls the window over when it has expired. Caller holds mu.
func (g *Gatekeeper) visitorLocked(ip string) *visitor {
	if now := g.clock.Now(); now.Sub(g.windowStart) > g.window {
		g.visitors = make(map[string]*visitor)
		g.windowStart = now
	}
	v, ok := g.visitors[ip]
	if !ok {
		v = &visitor{}
		g.visitors[ip] = v
	}
	return v
}

// Allow counts one request from ip and reports whether it is within budget
func (g *Gatekeeper) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.visitorLocked(ip)
	v.requests++
	if v.requests <= g.limit {
		return true
	}
	if over := v.requests - g.limit; over == 1 || over%RateLimitLogEvery == 0 {
		slog.Warn(LogMsgRateLimited, "ip", ip, "requests", v.requests, "window", g.window)
	}
	return false
}

// NoteBadKey records a rejected API key from ip
func (g *Gatekeeper) NoteBadKey(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.visitorLocked(ip)
	v.badKeyHit++
	if v.badKeyHit >= FailedAuthAlertAt {
		slog.Warn(LogMsgRepeatedBadKey, "ip", ip, "count", v.badKeyHit)
	}
}

// RequireAPIKey guards farm commands. Reads stay open so a browser EventSource,
// which cannot set headers, can follow the farm. An empty key turns the guard off.
func RequireAPIKey(apiKey string, ips IPResolver, gate *Gatekeeper) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := ips.resolve(r)
			gate.NoteBadKey(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"method", r.Method,
				"path", r.URL.Path,
				"ip", ip,
				"has_key", got != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RateLimit rejects addresses that spent their request budget
func RateLimit(ips IPResolver, gate *Gatekeeper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Allow(ips.resolve(r)) {
				w.Header().Set(HeaderRetryAfter, RetryAfterSeconds)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LimitBody caps request bodies at maxBytes
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders stamps the browser hardening headers on every response
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
