package http

import (
	"sync"
	"time"
)

const (
	bucketIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. Tokens refill continuously
// at capacity-per-window rather than in whole-window steps, so a
// client that backs off briefly regains requests gradually.
type RateLimiter struct {
	mu           sync.Mutex
	capacity     float64
	refillPerSec float64
	clients      map[string]*clientBucket
	stopCleanup  chan struct{}
}

// NewRateLimiter allows capacity requests per client per window.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:     float64(capacity),
		refillPerSec: float64(capacity) / window.Seconds(),
		clients:      make(map[string]*clientBucket),
		stopCleanup:  make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketIdleThreshold {
			delete(r.clients, client)
		}
	}
}

// Stop ends the background cleanup goroutine.
func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

// Allow reports whether the client may make another request now.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[client]
	if !exists {
		r.clients[client] = &clientBucket{
			tokens:   r.capacity - 1,
			lastSeen: now,
		}
		return true
	}

	bucket.tokens += now.Sub(bucket.lastSeen).Seconds() * r.refillPerSec
	if bucket.tokens > r.capacity {
		bucket.tokens = r.capacity
	}
	bucket.lastSeen = now

	if bucket.tokens < 1 {
		return false
	}

	bucket.tokens--
	return true
}
