package accounts

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// quickConnectTTL is how long a pending code stays redeemable.
	quickConnectTTL        = 10 * time.Minute
	quickConnectSweepEvery = time.Minute
	quickConnectCodeLen    = 6
)

// QuickConnectEntry is one pending (or approved) Quick Connect handshake.
// The initiating device polls by secret; the approving user enters the code.
type QuickConnectEntry struct {
	Secret        string
	Code          string
	Device        DeviceInfo
	Authenticated bool
	// UserID is set when an authenticated user approves the code.
	UserID  uuid.UUID
	Added   time.Time
	expires time.Time
}

// QuickConnectStore holds pending handshakes in memory, indexed by both
// secret and code. Entries expire after ten minutes.
type QuickConnectStore struct {
	mu       sync.Mutex
	bySecret map[string]*QuickConnectEntry
	byCode   map[string]*QuickConnectEntry
}

func NewQuickConnectStore() *QuickConnectStore {
	return &QuickConnectStore{
		bySecret: make(map[string]*QuickConnectEntry),
		byCode:   make(map[string]*QuickConnectEntry),
	}
}

// Initiate creates a new handshake for a device and returns it.
func (q *QuickConnectStore) Initiate(device DeviceInfo) *QuickConnectEntry {
	now := time.Now()
	e := &QuickConnectEntry{
		Secret:  uuid.NewString(),
		Code:    newQuickConnectCode(),
		Device:  device,
		Added:   now,
		expires: now.Add(quickConnectTTL),
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.bySecret[e.Secret] = e
	q.byCode[e.Code] = e
	return e
}

// BySecret returns the handshake a device is polling for. Expired entries
// are dropped and reported absent.
func (q *QuickConnectStore) BySecret(secret string) (QuickConnectEntry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.bySecret[secret]
	if !ok || q.expireLocked(e) {
		return QuickConnectEntry{}, false
	}
	return *e, true
}

// Authorize marks the handshake for a code as approved by the given user.
// Returns false for unknown or expired codes.
func (q *QuickConnectStore) Authorize(code string, userID uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.byCode[code]
	if !ok || q.expireLocked(e) {
		return false
	}
	e.Authenticated = true
	e.UserID = userID
	return true
}

// Consume removes a handshake by secret and returns it. The exchange
// endpoint calls this exactly once; the secret is dead afterwards.
func (q *QuickConnectStore) Consume(secret string) (QuickConnectEntry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.bySecret[secret]
	if !ok || q.expireLocked(e) {
		return QuickConnectEntry{}, false
	}
	delete(q.bySecret, e.Secret)
	delete(q.byCode, e.Code)
	return *e, true
}

// Len reports the number of pending handshakes.
func (q *QuickConnectStore) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.bySecret)
}

// StartSweeper drops expired handshakes once a minute until ctx is done.
func (q *QuickConnectStore) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(quickConnectSweepEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := q.sweep(); n > 0 {
					slog.Debug("expired quick connect codes removed", "count", n)
				}
			}
		}
	}()
}

func (q *QuickConnectStore) sweep() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, e := range q.bySecret {
		if q.expireLocked(e) {
			n++
		}
	}
	return n
}

// expireLocked removes e from both indexes when it is past its TTL.
// Callers hold q.mu.
func (q *QuickConnectStore) expireLocked(e *QuickConnectEntry) bool {
	if time.Now().Before(e.expires) {
		return false
	}
	delete(q.bySecret, e.Secret)
	delete(q.byCode, e.Code)
	return true
}

// newQuickConnectCode returns a 6-digit numeric code, the format Jellyfin
// clients display for the user to type in.
func newQuickConnectCode() string {
	code := make([]byte, quickConnectCodeLen)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code)
}
