package api

import (
	"context"
	"log/slog"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/upstream"
)

// SeedServers registers the servers named in PRECONFIGURED_SERVERS. Servers
// already present (matched by URL) are left alone, so it is safe to call on
// every startup.
func SeedServers(ctx context.Context, registry *upstream.Registry, cfg config.Config) {
	for _, pre := range cfg.PreconfiguredServers {
		if _, err := registry.ByURL(ctx, pre.URL); err == nil {
			continue
		}
		srv, err := registry.Add(ctx, pre.Name, pre.URL, pre.Priority)
		if err != nil {
			slog.Error("seed: failed to register server", "name", pre.Name, "url", pre.URL, "error", err)
			continue
		}
		slog.Info("seed: registered server", "name", srv.Name, "url", srv.URL, "priority", srv.Priority)
	}
}
