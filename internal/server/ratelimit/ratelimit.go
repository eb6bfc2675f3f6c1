// Package ratelimit provides per-client request limiting for the HTTP API.
package ratelimit

import (
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// EndpointConfig overrides the default limit for requests whose path starts with Path.
type EndpointConfig struct {
	Path   string     // Path prefix
	Method string     // HTTP method, empty for any
	RPS    rate.Limit // Sustained requests per second; 0 means unlimited
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	RPS             rate.Limit
	Burst           int
	IdleTTL         time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// DefaultEndpoints returns the built-in per-endpoint overrides: uploads are
// the only expensive request, health checks are never limited.
func DefaultEndpoints() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/health", RPS: 0},
		{Path: "/photos", Method: "POST", RPS: 1, Burst: 5},
	}
}

// NewConfig builds an enabled config with the given default rate.
func NewConfig(rps float64, burst int) *Config {
	return &Config{
		Enabled:         rps > 0,
		RPS:             rate.Limit(rps),
		Burst:           burst,
		IdleTTL:         time.Hour,
		CleanupInterval: 5 * time.Minute,
		Endpoints:       DefaultEndpoints(),
	}
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type entry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter manages one token bucket per client and endpoint group.
type Limiter struct {
	config  *Config
	mu      sync.Mutex
	entries map[string]*entry
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

// NewLimiter creates a new rate limiter with the given configuration.
// A nil config disables limiting.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{}
	}

	l := &Limiter{
		config:  config,
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanup(config.CleanupInterval)
	}

	return l
}

// Allow checks whether a request from clientID to path may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	rps, burst, group := l.match(path, method)
	if rps <= 0 {
		return true, Info{Allowed: true}
	}
	if burst <= 0 {
		burst = int(math.Max(1, math.Ceil(float64(rps))))
	}

	now := l.now()
	key := clientID + "|" + group

	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rps, burst)}
		l.entries[key] = e
	}
	e.lastAccess = now
	l.mu.Unlock()

	allowed := e.limiter.AllowN(now, 1)
	tokens := e.limiter.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     burst,
		Remaining: int(math.Max(0, math.Floor(tokens))),
		ResetTime: now.Add(secondsToDuration((float64(burst) - tokens) / float64(rps))),
	}
	if !allowed {
		info.RetryAfter = secondsToDuration((1 - tokens) / float64(rps))
	}
	return allowed, info
}

func (l *Limiter) match(path, method string) (rate.Limit, int, string) {
	for _, ep := range l.config.Endpoints {
		if ep.Method != "" && !strings.EqualFold(ep.Method, method) {
			continue
		}
		if strings.HasPrefix(path, ep.Path) {
			return ep.RPS, ep.Burst, ep.Method + " " + ep.Path
		}
	}
	return l.config.RPS, l.config.Burst, "*"
}

func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops limiters not used within IdleTTL.
func (l *Limiter) evictIdle() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, e := range l.entries {
		if e.lastAccess.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
