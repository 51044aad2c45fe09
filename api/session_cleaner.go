package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/jellyswarrm/jellyswarrm/accounts"
)

// SessionCleaner periodically deletes expired upstream sessions. This keeps
// the session table from growing unbounded when clients never log out.
type SessionCleaner struct {
	accounts *accounts.Service
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSessionCleaner creates a cleaner that runs every hour.
func NewSessionCleaner(svc *accounts.Service) *SessionCleaner {
	return &SessionCleaner{
		accounts: svc,
		done:     make(chan struct{}),
	}
}

// Start begins the background cleanup loop.
func (sc *SessionCleaner) Start(ctx context.Context) {
	ctx, sc.cancel = context.WithCancel(ctx)
	go func() {
		defer close(sc.done)
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sc.cleanup(ctx)
			}
		}
	}()
}

// Stop signals the cleanup loop to stop and waits for it.
func (sc *SessionCleaner) Stop() {
	if sc.cancel != nil {
		sc.cancel()
	}
	<-sc.done
}

func (sc *SessionCleaner) cleanup(ctx context.Context) {
	n, err := sc.accounts.DeleteExpiredSessions(ctx)
	if err != nil {
		slog.Warn("session cleanup failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("expired sessions cleaned up", "count", n)
	}
}
