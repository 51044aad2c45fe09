package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/ent"
	entserver "github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var (
	// ErrNoServers is returned by Best when the registry is empty.
	ErrNoServers = errors.New("upstream: no servers registered")
	// ErrDuplicate is returned when a server with the same name or URL
	// already exists.
	ErrDuplicate = errors.New("upstream: server already exists")
)

// Registry is the persistent set of federated upstream servers.
type Registry struct {
	db     *ent.Client
	guard  *writeguard.Guard
	health *Monitor
}

func NewRegistry(db *ent.Client, guard *writeguard.Guard) *Registry {
	return &Registry{db: db, guard: guard}
}

// SetMonitor attaches the health monitor so Best can prefer reachable
// servers. Optional; without it Best falls back to priority order alone.
func (r *Registry) SetMonitor(m *Monitor) {
	r.health = m
}

// NormalizeURL validates an upstream base URL and lowers it to canonical
// form: scheme and host lower-cased, no trailing slash, no fragment.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("upstream: parsing url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("upstream: url %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("upstream: url %q has no host", raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String(), nil
}

// Add registers a new upstream server. The URL is normalized before storing;
// a name or URL collision returns ErrDuplicate.
func (r *Registry) Add(ctx context.Context, name, rawURL string, priority int) (*ent.Server, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name == "" {
		return nil, fmt.Errorf("upstream: server name must not be empty")
	}

	exists, err := r.db.Server.Query().Where(entserver.URL(normalized)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("upstream: checking url: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	var srv *ent.Server
	err = r.guard.Do(ctx, func() error {
		var err error
		srv, err = r.db.Server.Create().
			SetName(name).
			SetURL(normalized).
			SetPriority(priority).
			Save(ctx)
		return err
	})
	if ent.IsConstraintError(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("upstream: creating server: %w", err)
	}
	return srv, nil
}

// Delete removes a server. Mappings, sessions, media mappings, health rows
// and merged-library sources referencing it go with it via cascades.
func (r *Registry) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.guard.Do(ctx, func() error {
		return r.db.Server.DeleteOneID(id).Exec(ctx)
	})
	if ent.IsNotFound(err) {
		return err
	}
	if err != nil {
		return fmt.Errorf("upstream: deleting server: %w", err)
	}
	if r.health != nil {
		r.health.Forget(id)
	}
	return nil
}

// List returns all servers ordered by priority (highest first), name as the
// tie-breaker. This ordering defines merge leadership everywhere.
func (r *Registry) List(ctx context.Context) ([]*ent.Server, error) {
	servers, err := r.db.Server.Query().
		Order(ent.Desc(entserver.FieldPriority), ent.Asc(entserver.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("upstream: listing servers: %w", err)
	}
	return servers, nil
}

// Best returns the highest-priority server currently considered reachable,
// falling back to the highest-priority server outright when none are.
// Returns ErrNoServers on an empty registry.
func (r *Registry) Best(ctx context.Context) (*ent.Server, error) {
	servers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 {
		return nil, ErrNoServers
	}
	if r.health != nil {
		for _, s := range servers {
			if r.health.IsAvailable(s.ID) {
				return s, nil
			}
		}
	}
	return servers[0], nil
}

// ByID loads one server.
func (r *Registry) ByID(ctx context.Context, id uuid.UUID) (*ent.Server, error) {
	srv, err := r.db.Server.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

// ByName loads a server by its unique name.
func (r *Registry) ByName(ctx context.Context, name string) (*ent.Server, error) {
	srv, err := r.db.Server.Query().Where(entserver.Name(name)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

// ByURL loads a server by URL, comparing in normalized form.
func (r *Registry) ByURL(ctx context.Context, rawURL string) (*ent.Server, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	srv, err := r.db.Server.Query().Where(entserver.URL(normalized)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

// Update applies a partial update. Nil fields are left unchanged; a non-nil
// URL is normalized first.
func (r *Registry) Update(ctx context.Context, id uuid.UUID, name, rawURL *string, priority *int) (*ent.Server, error) {
	upd := r.db.Server.UpdateOneID(id)
	if name != nil {
		upd.SetName(strings.TrimSpace(*name))
	}
	if rawURL != nil {
		normalized, err := NormalizeURL(*rawURL)
		if err != nil {
			return nil, err
		}
		upd.SetURL(normalized)
	}
	if priority != nil {
		upd.SetPriority(*priority)
	}

	var srv *ent.Server
	err := r.guard.Do(ctx, func() error {
		var err error
		srv, err = upd.Save(ctx)
		return err
	})
	if ent.IsNotFound(err) || ent.IsConstraintError(err) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("upstream: updating server: %w", err)
	}
	return srv, nil
}

// UpdatePriority changes one server's merge priority.
func (r *Registry) UpdatePriority(ctx context.Context, id uuid.UUID, priority int) (*ent.Server, error) {
	return r.Update(ctx, id, nil, nil, &priority)
}
