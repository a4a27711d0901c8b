package services

import (
	"context"
	"log/slog"
	"time"
)

// Widget sessions idle for this long are removed along with expired
// dashboard sessions.
const staleChatSessionAge = 30 * 24 * time.Hour

// StartCleanup runs a background goroutine that periodically removes expired
// dashboard sessions, stale widget sessions and idle rate-limiter entries.
func StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Cleanup stopped")
				return
			case <-ticker.C:
				cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)

				count, err := CleanupExpiredSessions(cleanupCtx)
				if err != nil {
					slog.Error("Failed to cleanup expired sessions", "error", err)
				} else if count > 0 {
					slog.Info("Cleaned up expired sessions", "count", count)
				}

				count, err = CleanupStaleChatSessions(cleanupCtx, staleChatSessionAge)
				if err != nil {
					slog.Error("Failed to cleanup stale chat sessions", "error", err)
				} else if count > 0 {
					slog.Info("Cleaned up stale chat sessions", "count", count)
				}

				GetChatRateLimiter().Prune()

				cancel()
			}
		}
	}()

	slog.Info("Cleanup started")
}
