package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/ent"
	enthealthcheck "github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

const (
	// Default interval between health checks.
	defaultHealthInterval = 30 * time.Second
	// Timeout for a single health-check ping.
	healthCheckTimeout = 5 * time.Second
	// Persisted check rows older than this are pruned each cycle.
	healthRetention = 7 * 24 * time.Hour
	// Consecutive failed pings before a server flips unavailable. A single
	// dropped packet must not cause flapping.
	consecutiveCheckFailures = 2
	// Consecutive live-request failures before the circuit breaker trips a
	// server without waiting for the next ping cycle.
	consecutiveRequestFailures = 5
)

type serverStatus struct {
	available    bool
	lastChecked  time.Time
	lastErr      string
	version      string
	failureCount int
}

// Monitor periodically pings every registered server, maintains an in-memory
// availability map and appends one HealthCheck row per probe. Fan-outs
// consult the map so requests skip servers that are known to be offline.
type Monitor struct {
	db       *ent.Client
	pool     *Pool
	guard    *writeguard.Guard
	interval time.Duration

	mu       sync.RWMutex
	statuses map[uuid.UUID]*serverStatus

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a health monitor. Call Start to begin background
// checking.
func NewMonitor(db *ent.Client, pool *Pool, guard *writeguard.Guard, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	return &Monitor{
		db:       db,
		pool:     pool,
		guard:    guard,
		interval: interval,
		statuses: make(map[uuid.UUID]*serverStatus),
		done:     make(chan struct{}),
	}
}

// Start begins the background check loop: an immediate sweep so servers are
// classified before the first request, then one per interval. Safe to call
// once.
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	go func() {
		defer close(m.done)

		m.checkAll(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.checkAll(ctx)
				m.prune(ctx)
			}
		}
	}()
}

// Stop signals the check loop to stop and waits for it to finish.
func (m *Monitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	<-m.done
}

// IsAvailable reports whether a server is considered reachable. Servers that
// have never been checked are assumed available so the first requests aren't
// blocked.
func (m *Monitor) IsAvailable(serverID uuid.UUID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.statuses[serverID]
	if !ok {
		return true
	}
	return s.available
}

// Forget drops a server's in-memory status, used when it is deleted from the
// registry.
func (m *Monitor) Forget(serverID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.statuses, serverID)
}

// RecordRequestFailure counts a live proxied-request failure against a
// server. If a server starts failing live requests, the circuit breaker trips
// it faster than waiting for the next ping cycle; the next successful ping
// restores it.
func (m *Monitor) RecordRequestFailure(serverID uuid.UUID, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.statuses[serverID]
	if !ok {
		s = &serverStatus{available: true}
		m.statuses[serverID] = s
	}

	s.failureCount++
	if s.failureCount >= consecutiveRequestFailures && s.available {
		slog.Warn("circuit breaker: server marked unavailable after repeated request failures",
			"server", name, "id", serverID,
			"failures", s.failureCount)
		s.available = false
	}
}

// RecordRequestSuccess resets the live-request failure counter. Availability
// transitions stay owned by the ping loop.
func (m *Monitor) RecordRequestSuccess(serverID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.statuses[serverID]
	if !ok {
		return
	}
	if s.available {
		s.failureCount = 0
	}
}

// Status is a snapshot of one server's health for the admin API.
type Status struct {
	ServerID     uuid.UUID `json:"server_id"`
	Available    bool      `json:"available"`
	LastChecked  time.Time `json:"last_checked"`
	LastError    string    `json:"last_error,omitempty"`
	Version      string    `json:"version,omitempty"`
	FailureCount int       `json:"failure_count"`
}

// Statuses returns a snapshot of all tracked server health statuses.
func (m *Monitor) Statuses() []Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Status, 0, len(m.statuses))
	for id, s := range m.statuses {
		result = append(result, Status{
			ServerID:     id,
			Available:    s.available,
			LastChecked:  s.lastChecked,
			LastError:    s.lastErr,
			Version:      s.version,
			FailureCount: s.failureCount,
		})
	}
	return result
}

// CheckNow runs one synchronous sweep of every server outside the periodic
// loop. The admin API uses it to refresh statuses on demand.
func (m *Monitor) CheckNow(ctx context.Context) {
	m.checkAll(ctx)
}

// checkAll loads every registered server and pings each one concurrently.
func (m *Monitor) checkAll(ctx context.Context) {
	servers, err := m.db.Server.Query().All(ctx)
	if err != nil {
		slog.Warn("health monitor: failed to query servers", "error", err)
		return
	}

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func(srv *ent.Server) {
			defer wg.Done()
			m.checkOne(ctx, srv)
		}(srv)
	}
	wg.Wait()
}

// publicInfo is the slice of /System/Info/Public the monitor cares about.
type publicInfo struct {
	Version string `json:"Version"`
}

// checkOne pings one server's /System/Info/Public, updates the status map
// and appends a HealthCheck row.
func (m *Monitor) checkOne(ctx context.Context, srv *ent.Server) {
	pingURL := srv.URL + "/System/Info/Public"

	reqCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	started := time.Now()
	var version string

	check := func() error {
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pingURL, nil)
		if err != nil {
			return fmt.Errorf("bad url: %w", err)
		}
		resp, err := m.pool.jsonClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode < 200 || resp.StatusCode >= 400 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		var info publicInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err == nil {
			version = info.Version
		}
		return nil
	}

	err := check()
	elapsed := time.Since(started).Milliseconds()
	m.recordResult(srv, version, err)
	m.persist(ctx, srv, version, elapsed, err)
}

// recordResult updates the in-memory status. A server flips unavailable
// after consecutiveCheckFailures failed pings and recovers on the first
// success.
func (m *Monitor) recordResult(srv *ent.Server, version string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.statuses[srv.ID]
	if !ok {
		s = &serverStatus{available: true}
		m.statuses[srv.ID] = s
	}

	s.lastChecked = time.Now()

	if err == nil {
		if !s.available {
			slog.Info("server came back online", "server", srv.Name, "id", srv.ID)
		}
		s.available = true
		s.failureCount = 0
		s.lastErr = ""
		if version != "" {
			s.version = version
		}
		return
	}

	s.failureCount++
	s.lastErr = err.Error()

	if s.failureCount >= consecutiveCheckFailures && s.available {
		slog.Warn("server marked unavailable",
			"server", srv.Name, "id", srv.ID,
			"failures", s.failureCount, "error", err)
		s.available = false
	}
}

// persist appends one HealthCheck row for the probe. Best-effort: history is
// diagnostic, a failed insert must not disturb the check loop.
func (m *Monitor) persist(ctx context.Context, srv *ent.Server, version string, elapsedMs int64, checkErr error) {
	create := m.db.HealthCheck.Create().
		SetServer(srv).
		SetHealthy(checkErr == nil).
		SetResponseTimeMs(elapsedMs)
	if version != "" {
		create.SetVersion(version)
	}
	if checkErr != nil {
		create.SetErrorMessage(checkErr.Error())
	}

	err := m.guard.Do(ctx, func() error {
		_, err := create.Save(ctx)
		return err
	})
	if err != nil {
		slog.Warn("health monitor: failed to persist check", "server", srv.Name, "error", err)
	}
}

// prune deletes check rows past the retention window.
func (m *Monitor) prune(ctx context.Context) {
	cutoff := time.Now().Add(-healthRetention)
	err := m.guard.Do(ctx, func() error {
		_, err := m.db.HealthCheck.Delete().
			Where(enthealthcheck.CheckedAtLT(cutoff)).
			Exec(ctx)
		return err
	})
	if err != nil {
		slog.Warn("health monitor: failed to prune history", "error", err)
	}
}
