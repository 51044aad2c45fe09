// Package idmap maintains the persistent bijection between upstream media
// IDs and the opaque virtual IDs the proxy exposes to clients.
//
// Every (original ID, server) pair maps to exactly one virtual ID and back.
// Mappings are stored in the database and fronted by TTL caches sized for
// the hot set; cache misses fall back to queries, and creation is
// atomic-with-retry so concurrent requests for the same item agree on one
// virtual ID.
package idmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	entserver "github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

const (
	cacheTTL = 30 * time.Minute

	// virtualCacheCapacity bounds the original→virtual cache; response
	// virtualization hits it once per ID field.
	virtualCacheCapacity = 100_000
	// resolveCacheCapacity bounds the virtual→original cache; request
	// preprocessing hits it once or twice per request.
	resolveCacheCapacity = 10_000

	createAttempts = 3
	createBackoff  = 50 * time.Millisecond
)

var (
	// ErrNotFound is returned when a virtual ID has no mapping.
	ErrNotFound = errors.New("idmap: mapping not found")
	// ErrContention is returned when mapping creation keeps losing races
	// after retries. Surfaced as a transient server error.
	ErrContention = errors.New("idmap: mapping insert contention")
)

// Resolved is the owning side of a virtual ID.
type Resolved struct {
	VirtualID  string
	OriginalID string
	ServerID   uuid.UUID
}

// Store implements the mapping operations over the database and two caches.
type Store struct {
	db    *ent.Client
	guard *writeguard.Guard

	// virtual caches serverID|originalID → virtualID.
	virtual *ttlcache.Cache[string, string]
	// resolve caches virtualID → Resolved.
	resolve *ttlcache.Cache[string, Resolved]
}

// New builds a store and starts the cache eviction janitors. Call Stop on
// shutdown.
func New(db *ent.Client, guard *writeguard.Guard) *Store {
	s := &Store{
		db:    db,
		guard: guard,
		virtual: ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](cacheTTL),
			ttlcache.WithCapacity[string, string](virtualCacheCapacity),
		),
		resolve: ttlcache.New[string, Resolved](
			ttlcache.WithTTL[string, Resolved](cacheTTL),
			ttlcache.WithCapacity[string, Resolved](resolveCacheCapacity),
		),
	}
	go s.virtual.Start()
	go s.resolve.Start()
	return s
}

// Stop terminates the cache janitors.
func (s *Store) Stop() {
	s.virtual.Stop()
	s.resolve.Stop()
}

func virtualKey(serverID uuid.UUID, originalID string) string {
	return serverID.String() + "|" + originalID
}

func (s *Store) cacheBoth(r Resolved) {
	s.virtual.Set(virtualKey(r.ServerID, r.OriginalID), r.VirtualID, ttlcache.DefaultTTL)
	s.resolve.Set(r.VirtualID, r, ttlcache.DefaultTTL)
}

// Virtualize returns the virtual ID for an upstream item, creating the
// mapping on first sight. Idempotent: the same (originalID, server) pair
// always yields the same virtual ID, concurrent callers included.
func (s *Store) Virtualize(ctx context.Context, originalID string, server *ent.Server) (string, error) {
	originalID = Normalize(originalID)
	if originalID == "" {
		return "", fmt.Errorf("idmap: empty original id")
	}

	if item := s.virtual.Get(virtualKey(server.ID, originalID)); item != nil {
		return item.Value(), nil
	}

	if vid, err := s.lookupVirtual(ctx, originalID, server.ID); err == nil {
		return vid, nil
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	return s.create(ctx, originalID, server)
}

func (s *Store) lookupVirtual(ctx context.Context, originalID string, serverID uuid.UUID) (string, error) {
	m, err := s.db.MediaMapping.Query().
		Where(
			mediamapping.OriginalID(originalID),
			mediamapping.HasServerWith(entserver.ID(serverID)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("idmap: lookup: %w", err)
	}
	s.cacheBoth(Resolved{VirtualID: m.VirtualID, OriginalID: originalID, ServerID: serverID})
	return m.VirtualID, nil
}

// create inserts a new mapping. A constraint violation means a concurrent
// request created it first (or, vanishingly rarely, a virtual ID collided);
// re-query and retry with a fresh ID.
func (s *Store) create(ctx context.Context, originalID string, server *ent.Server) (string, error) {
	for attempt := 0; attempt < createAttempts; attempt++ {
		if attempt > 0 {
			backoff := createBackoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		vid := NewVirtualID()
		err := s.guard.Do(ctx, func() error {
			_, err := s.db.MediaMapping.Create().
				SetVirtualID(vid).
				SetOriginalID(originalID).
				SetServer(server).
				Save(ctx)
			return err
		})
		if err == nil {
			s.cacheBoth(Resolved{VirtualID: vid, OriginalID: originalID, ServerID: server.ID})
			return vid, nil
		}
		if !ent.IsConstraintError(err) {
			return "", fmt.Errorf("idmap: create: %w", err)
		}
		// Lost the race: the winner's row is authoritative.
		if vid, lookupErr := s.lookupVirtual(ctx, originalID, server.ID); lookupErr == nil {
			return vid, nil
		}
	}
	return "", ErrContention
}

// Resolve maps a virtual ID back to its original ID and owning server.
// Accepts any UUID spelling of the virtual ID (HLS URLs use the hyphenated
// form). Returns ErrNotFound for unknown IDs.
func (s *Store) Resolve(ctx context.Context, virtualID string) (Resolved, error) {
	virtualID = Normalize(virtualID)

	if item := s.resolve.Get(virtualID); item != nil {
		return item.Value(), nil
	}

	m, err := s.db.MediaMapping.Query().
		Where(mediamapping.VirtualID(virtualID)).
		WithServer().
		Only(ctx)
	if ent.IsNotFound(err) {
		return Resolved{}, ErrNotFound
	}
	if err != nil {
		return Resolved{}, fmt.Errorf("idmap: resolve: %w", err)
	}

	r := Resolved{VirtualID: virtualID, OriginalID: m.OriginalID, ServerID: m.Edges.Server.ID}
	s.cacheBoth(r)
	return r, nil
}

// ResolveWithServer resolves a virtual ID and loads the owning server row.
func (s *Store) ResolveWithServer(ctx context.Context, virtualID string) (Resolved, *ent.Server, error) {
	r, err := s.Resolve(ctx, virtualID)
	if err != nil {
		return Resolved{}, nil, err
	}
	srv, err := s.db.Server.Get(ctx, r.ServerID)
	if ent.IsNotFound(err) {
		return Resolved{}, nil, ErrNotFound
	}
	if err != nil {
		return Resolved{}, nil, fmt.Errorf("idmap: load server: %w", err)
	}
	return r, srv, nil
}

// Prewarm loads the existing mappings for a batch of original IDs into the
// caches with one query. Federated responses call this before virtualizing
// each item so only genuinely new items pay for inserts.
func (s *Store) Prewarm(ctx context.Context, server *ent.Server, originalIDs []string) error {
	if len(originalIDs) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(originalIDs))
	for _, id := range originalIDs {
		if n := Normalize(id); n != "" {
			normalized = append(normalized, n)
		}
	}

	mappings, err := s.db.MediaMapping.Query().
		Where(
			mediamapping.OriginalIDIn(normalized...),
			mediamapping.HasServerWith(entserver.ID(server.ID)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("idmap: prewarm: %w", err)
	}
	for _, m := range mappings {
		s.cacheBoth(Resolved{VirtualID: m.VirtualID, OriginalID: m.OriginalID, ServerID: server.ID})
	}
	return nil
}

// PurgeServer removes every mapping owned by a server and invalidates the
// caches. Returns the number of rows deleted.
func (s *Store) PurgeServer(ctx context.Context, serverID uuid.UUID) (int, error) {
	var n int
	err := s.guard.Do(ctx, func() error {
		var err error
		n, err = s.db.MediaMapping.Delete().
			Where(mediamapping.HasServerWith(entserver.ID(serverID))).
			Exec(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("idmap: purge: %w", err)
	}

	prefix := serverID.String() + "|"
	for _, key := range s.virtual.Keys() {
		if strings.HasPrefix(key, prefix) {
			s.virtual.Delete(key)
		}
	}
	for key, item := range s.resolve.Items() {
		if item.Value().ServerID == serverID {
			s.resolve.Delete(key)
		}
	}
	return n, nil
}
