// FILE: logviewer/src/internal/limit/rate.go
package limit

import (
	"sync"
	"sync/atomic"
	"time"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

// RequestLimiter provides per-client request rate limiting
type RequestLimiter struct {
	clients         sync.Map // map[string]*clientLimiter
	requestsPerSec  float64
	burstSize       int
	cleanupInterval time.Duration
	logger          *log.Logger

	totalAllowed atomic.Uint64
	totalDenied  atomic.Uint64

	done chan struct{}
	once sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRequestLimiter creates a limiter. Returns nil when rate limiting is disabled.
func NewRequestLimiter(cfg *config.RateLimitConfig, logger *log.Logger) *RequestLimiter {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	interval := time.Duration(cfg.CleanupIntervalSec) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	rl := &RequestLimiter{
		requestsPerSec:  cfg.RequestsPerSecond,
		burstSize:       cfg.BurstSize,
		cleanupInterval: interval,
		logger:          logger,
		done:            make(chan struct{}),
	}

	go rl.cleanup()

	logger.Info("msg", "Request rate limiter initialized",
		"component", "rate_limiter",
		"requests_per_second", cfg.RequestsPerSecond,
		"burst_size", cfg.BurstSize)

	return rl
}

// Allow reports whether a request from clientIP may proceed
func (rl *RequestLimiter) Allow(clientIP string) bool {
	if rl == nil {
		return true
	}

	if rl.getLimiter(clientIP).Allow() {
		rl.totalAllowed.Add(1)
		return true
	}

	rl.totalDenied.Add(1)
	rl.logger.Debug("msg", "Request rate limited",
		"component", "rate_limiter",
		"client", clientIP)
	return false
}

// getLimiter returns the rate limiter for a client
func (rl *RequestLimiter) getLimiter(clientIP string) *rate.Limiter {
	now := time.Now().UnixNano()

	if val, ok := rl.clients.Load(clientIP); ok {
		client := val.(*clientLimiter)
		client.lastSeen.Store(now)
		return client.limiter
	}

	client := &clientLimiter{
		limiter: rate.NewLimiter(rate.Limit(rl.requestsPerSec), rl.burstSize),
	}
	client.lastSeen.Store(now)

	actual, _ := rl.clients.LoadOrStore(clientIP, client)
	return actual.(*clientLimiter).limiter
}

func (rl *RequestLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.removeOldClients(time.Now())
		}
	}
}

// removeOldClients drops limiters idle for two cleanup intervals
func (rl *RequestLimiter) removeOldClients(now time.Time) {
	threshold := now.Add(-rl.cleanupInterval * 2).UnixNano()

	rl.clients.Range(func(key, value any) bool {
		if value.(*clientLimiter).lastSeen.Load() < threshold {
			rl.clients.Delete(key)
		}
		return true
	})
}

// Stop shuts down the cleanup routine
func (rl *RequestLimiter) Stop() {
	if rl == nil {
		return
	}
	rl.once.Do(func() { close(rl.done) })
}

// GetStats returns rate limiter statistics
func (rl *RequestLimiter) GetStats() map[string]any {
	if rl == nil {
		return map[string]any{"enabled": false}
	}

	count := 0
	rl.clients.Range(func(_, _ any) bool {
		count++
		return true
	})

	return map[string]any{
		"enabled":             true,
		"requests_per_second": rl.requestsPerSec,
		"burst_size":          rl.burstSize,
		"active_clients":      count,
		"total_allowed":       rl.totalAllowed.Load(),
		"total_denied":        rl.totalDenied.Load(),
	}
}
