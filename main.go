package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"entgo.io/ent/dialect"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/api"
	"github.com/jellyswarrm/jellyswarrm/api/handler"
	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/ent/migrate"
	"github.com/jellyswarrm/jellyswarrm/idmap"
	"github.com/jellyswarrm/jellyswarrm/playsession"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
	"github.com/jellyswarrm/jellyswarrm/upstream"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

func init() {
	// modernc.org/sqlite registers as "sqlite"; ent expects "sqlite3".
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	drv := dialect.SQLite
	if cfg.DatabaseDriver == "postgres" {
		drv = dialect.Postgres
	}
	client, err := ent.Open(drv, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("failed to open database connection", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	if err := client.Schema.Create(
		context.Background(),
		migrate.WithGlobalUniqueID(true),
	); err != nil {
		slog.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	guard := writeguard.New()
	registry := upstream.NewRegistry(client, guard)
	api.SeedServers(context.Background(), registry, cfg)

	pool := upstream.NewPool(cfg)
	monitor := upstream.NewMonitor(client, pool, guard, cfg.HealthCheckInterval)
	pool.SetMonitor(monitor)
	registry.SetMonitor(monitor)
	monitor.Start(context.Background())

	accountsSvc := accounts.New(client, guard, cfg.MasterKey)
	ids := idmap.New(client, guard)
	plays := playsession.NewTracker()

	quick := accounts.NewQuickConnectStore()
	quickCtx, quickCancel := context.WithCancel(context.Background())
	quick.StartSweeper(quickCtx)

	pre := &preprocess.Preprocessor{
		Accounts: accountsSvc,
		IDs:      ids,
		Registry: registry,
		Config:   cfg,
	}

	deps := &handler.Deps{
		DB:       client,
		Cfg:      cfg,
		Guard:    guard,
		Accounts: accountsSvc,
		IDs:      ids,
		Registry: registry,
		Pool:     pool,
		Plays:    plays,
		Pre:      pre,
		Quick:    quick,
	}
	h, stopLimiter := api.NewRouter(deps)

	sessionCleaner := api.NewSessionCleaner(accountsSvc)
	sessionCleaner.Start(context.Background())

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MiB
	}

	// Start server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("jellyswarrm listening", "addr", cfg.ListenAddr(), "servers", len(cfg.PreconfiguredServers))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt or SIGTERM (e.g. from container orchestration).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	monitor.Stop()
	stopLimiter()
	quickCancel()
	sessionCleaner.Stop()
	plays.Stop()
	ids.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server stopped")
}
