package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("sess-a"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("sess-a"))

	// Sessions are tracked independently.
	assert.True(t, rl.Allow("sess-b"))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter(2)

	// Backdate the hits past the window; the next request should pass.
	rl.hits["sess-a"] = []time.Time{
		time.Now().Add(-2 * time.Minute),
		time.Now().Add(-90 * time.Second),
	}

	assert.True(t, rl.Allow("sess-a"))
}

func TestRateLimiter_Prune(t *testing.T) {
	rl := NewRateLimiter(5)

	rl.hits["stale"] = []time.Time{time.Now().Add(-5 * time.Minute)}
	rl.Allow("active")

	rl.Prune()

	assert.NotContains(t, rl.hits, "stale")
	assert.Contains(t, rl.hits, "active")
}
