// Package writeguard serializes database writes behind a single permit.
//
// SQLite allows one writer at a time; concurrent write transactions from the
// request path would otherwise surface as busy errors. All mutating service
// operations acquire the guard first, so writes queue instead of failing.
// With PostgreSQL the guard is cheap and harmless.
package writeguard

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	// DefaultBudget is the total time a caller may spend waiting for the
	// permit before giving up.
	DefaultBudget = 30 * time.Second

	acquireAttempts = 5
	retryDelay      = 200 * time.Millisecond
)

// ErrTimeout is returned when the acquisition budget is exhausted. Callers
// surface it as a transient server error.
var ErrTimeout = errors.New("writeguard: acquire timed out")

// Guard is a single-permit semaphore with a bounded, retrying acquire.
type Guard struct {
	sem    *semaphore.Weighted
	budget time.Duration
}

// New returns a guard with the default acquisition budget.
func New() *Guard {
	return NewWithBudget(DefaultBudget)
}

// NewWithBudget returns a guard whose Acquire gives up after total.
func NewWithBudget(total time.Duration) *Guard {
	return &Guard{sem: semaphore.NewWeighted(1), budget: total}
}

// Acquire obtains the permit, waiting up to the guard's budget split over
// several attempts. On success the returned release function must be called
// exactly once. Returns ctx.Err() if the caller's context ends first and
// ErrTimeout when the budget runs out.
func (g *Guard) Acquire(ctx context.Context) (release func(), err error) {
	attemptBudget := g.budget / acquireAttempts
	for attempt := 0; attempt < acquireAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}
		attemptCtx, cancel := context.WithTimeout(ctx, attemptBudget)
		err := g.sem.Acquire(attemptCtx, 1)
		cancel()
		if err == nil {
			return func() { g.sem.Release(1) }, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, ErrTimeout
}

// TryAcquire obtains the permit without blocking.
func (g *Guard) TryAcquire() (release func(), ok bool) {
	if !g.sem.TryAcquire(1) {
		return nil, false
	}
	return func() { g.sem.Release(1) }, true
}

// WriteInProgress reports whether the permit is currently held.
func (g *Guard) WriteInProgress() bool {
	if g.sem.TryAcquire(1) {
		g.sem.Release(1)
		return false
	}
	return true
}

// Do runs fn while holding the permit.
func (g *Guard) Do(ctx context.Context, fn func() error) error {
	release, err := g.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}
