package services

import (
	"sync"
	"time"
)

// RateLimiter tracks message timestamps per visitor session over a sliding
// one-minute window. Unlike a blocking limiter, Allow rejects immediately:
// the widget shows a "slow down" notice instead of queueing.
type RateLimiter struct {
	mu                sync.Mutex
	requestsPerMinute int
	hits              map[string][]time.Time
}

// NewRateLimiter creates a new per-visitor rate limiter
func NewRateLimiter(rpm int) *RateLimiter {
	return &RateLimiter{
		requestsPerMinute: rpm,
		hits:              make(map[string][]time.Time),
	}
}

// Allow records one request for the session and reports whether it fits
// within the window.
func (r *RateLimiter) Allow(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-time.Minute)

	valid := r.hits[sessionID][:0]
	for _, t := range r.hits[sessionID] {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= r.requestsPerMinute {
		r.hits[sessionID] = valid
		return false
	}

	r.hits[sessionID] = append(valid, now)
	return true
}

// Prune drops sessions with no recent activity so the map doesn't grow
// without bound.
func (r *RateLimiter) Prune() {
	r.mu.Lock()
	defer r.mu.Unlock()

	windowStart := time.Now().Add(-time.Minute)
	for sessionID, times := range r.hits {
		active := false
		for _, t := range times {
			if t.After(windowStart) {
				active = true
				break
			}
		}
		if !active {
			delete(r.hits, sessionID)
		}
	}
}

// Shared limiter for the widget message endpoint. Message volume is bounded
// by human typing speed; 20/min leaves generous headroom.
var chatRateLimiter = NewRateLimiter(20)

// GetChatRateLimiter returns the widget message rate limiter
func GetChatRateLimiter() *RateLimiter {
	return chatRateLimiter
}
