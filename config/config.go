package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

// StreamingMode selects how media bytes reach the client.
type StreamingMode string

const (
	// StreamRedirect answers stream requests with a 307 redirect to the
	// owning upstream server. Clients must be able to reach upstreams directly.
	StreamRedirect StreamingMode = "redirect"
	// StreamProxy pipes stream bytes through this process.
	StreamProxy StreamingMode = "proxy"
)

// PreconfiguredServer is an upstream seeded into the registry at startup.
type PreconfiguredServer struct {
	Name     string
	URL      string
	Priority int
}

type Config struct {
	// ServerID is the ID the proxy presents as its own Jellyfin server ID.
	// Auto-generated (UUID, simple form) when empty.
	ServerID string `env:"SERVER_ID"`
	// ServerName is the human-readable name reported to clients.
	ServerName string `env:"SERVER_NAME" envDefault:"Jellyswarrm Proxy"`
	// PublicAddress is the host[:port] clients use to reach the proxy,
	// reported in System/Info responses.
	PublicAddress string `env:"PUBLIC_ADDRESS" envDefault:"localhost:3000"`
	// Host is the interface the HTTP server binds to.
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	// Port is the TCP port the HTTP server binds to.
	Port int `env:"PORT" envDefault:"3000"`
	// URLPrefix is an optional path segment the proxy is served under
	// (e.g. "media" for https://example.com/media/...). Stored without
	// leading or trailing slashes.
	URLPrefix string `env:"URL_PREFIX"`
	// ExternalURL is the publicly reachable base URL for this proxy. When
	// empty it is derived from PublicAddress.
	ExternalURL string `env:"EXTERNAL_URL"`
	// IncludeServerNameInMedia controls whether item names in federated
	// responses are suffixed with the owning server's name ("Dune [Main]").
	IncludeServerNameInMedia bool `env:"INCLUDE_SERVER_NAME_IN_MEDIA" envDefault:"true"`

	// AdminUsername and AdminPassword gate the /proxy admin REST surface.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"jellyswarrm"`
	// MasterKey, when set, additionally seals every stored upstream password
	// under a recovery key so an admin can re-encrypt mappings after a user
	// password reset. Empty disables recovery sealing.
	MasterKey string `env:"MASTER_KEY"`
	// SessionKeyB64 is the base64-encoded key used to sign admin session
	// tokens. A random key is generated when empty (admin sessions then
	// do not survive restarts).
	SessionKeyB64 string `env:"SESSION_KEY"`
	// SessionKey is the decoded form of SessionKeyB64, populated by Load.
	SessionKey []byte `env:"-"`

	// DatabaseDriver is the database/sql driver name: sqlite3 or postgres.
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite3"`
	// DatabaseDSN is the connection string for DatabaseDriver.
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"file:jellyswarrm.db?cache=shared&_pragma=foreign_keys(1)"`

	// UpstreamTimeout bounds every JSON request to an upstream server,
	// including each branch of a federated fan-out.
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"20s"`
	// HealthCheckInterval is how often each upstream is pinged. Upstreams
	// that fail 2 consecutive checks are skipped until they recover.
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL" envDefault:"30s"`
	// MediaStreamingModeRaw is validated into MediaStreamingMode by Load;
	// invalid values fall back to redirect with a warning.
	MediaStreamingModeRaw string `env:"MEDIA_STREAMING_MODE" envDefault:"redirect"`
	// MediaStreamingMode is the validated streaming mode.
	MediaStreamingMode StreamingMode `env:"-"`

	// PreconfiguredServersRaw lists upstreams seeded at startup, as
	// comma-separated "name=url[=priority]" entries. Parsed by Load.
	PreconfiguredServersRaw string `env:"PRECONFIGURED_SERVERS"`
	// PreconfiguredServers is the parsed form of PreconfiguredServersRaw.
	PreconfiguredServers []PreconfiguredServer `env:"-"`

	// SessionTTL is how long an upstream session remains usable after its
	// last activity. 0 disables expiry.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	// LoginMaxAttempts is the number of login attempts allowed per IP
	// within LoginWindow before further attempts are rejected.
	LoginMaxAttempts int `env:"LOGIN_RATE_LIMIT" envDefault:"5"`
	// LoginWindow is the sliding window for counting login attempts.
	LoginWindow time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"10s"`

	// CORSOrigins is an additional set of origins (comma-separated) allowed
	// to make credentialed cross-origin requests. The ExternalURL origin is
	// always included automatically.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// to complete during graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	// LogLevel is the slog level: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// ListenAddr is the host:port the HTTP server binds to.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BaseURL is the publicly reachable base URL including the URL prefix,
// without a trailing slash.
func (c Config) BaseURL() string {
	base := c.ExternalURL
	if base == "" {
		base = "http://" + c.PublicAddress
	}
	base = strings.TrimRight(base, "/")
	if c.URLPrefix != "" {
		base += "/" + c.URLPrefix
	}
	return base
}

// Load parses configuration from environment variables.
// Malformed values for typed fields return an error; invalid enum values
// (streaming mode) fall back to their default with a warning instead of
// failing startup.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.ServerID == "" {
		cfg.ServerID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	cfg.URLPrefix = strings.Trim(cfg.URLPrefix, "/")

	cfg.MediaStreamingMode = parseStreamingMode(cfg.MediaStreamingModeRaw)

	cfg.SessionKey, err = parseSessionKey(cfg.SessionKeyB64)
	if err != nil {
		return Config{}, fmt.Errorf("config: SESSION_KEY: %w", err)
	}

	cfg.PreconfiguredServers, err = parsePreconfiguredServers(cfg.PreconfiguredServersRaw)
	if err != nil {
		return Config{}, fmt.Errorf("config: PRECONFIGURED_SERVERS: %w", err)
	}

	return cfg, nil
}

func parseStreamingMode(raw string) StreamingMode {
	switch StreamingMode(strings.ToLower(raw)) {
	case StreamRedirect:
		return StreamRedirect
	case StreamProxy:
		return StreamProxy
	default:
		slog.Warn("invalid MEDIA_STREAMING_MODE, falling back to redirect", slog.String("value", raw))
		return StreamRedirect
	}
}

// parseSessionKey decodes the base64 signing key, generating a random
// 64-byte key when none is configured.
func parseSessionKey(b64 string) ([]byte, error) {
	if b64 == "" {
		key := make([]byte, 64)
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
		slog.Warn("SESSION_KEY not set, generated a volatile key; admin sessions will not survive restarts")
		return key, nil
	}
	key, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	if len(key) < 32 {
		return nil, fmt.Errorf("key must be at least 32 bytes, got %d", len(key))
	}
	return key, nil
}

// parsePreconfiguredServers parses "name=url[=priority]" entries separated
// by commas. The priority segment is optional and defaults to 100.
// URLs may themselves contain "=" (query strings), so only a trailing
// integer segment is treated as a priority.
func parsePreconfiguredServers(raw string) ([]PreconfiguredServer, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var servers []PreconfiguredServer
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, rest, ok := strings.Cut(entry, "=")
		if !ok || name == "" || rest == "" {
			return nil, fmt.Errorf("malformed entry %q, want name=url[=priority]", entry)
		}
		url := rest
		priority := 100
		if i := strings.LastIndex(rest, "="); i != -1 {
			if p, err := strconv.Atoi(rest[i+1:]); err == nil {
				url = rest[:i]
				priority = p
			}
		}
		servers = append(servers, PreconfiguredServer{
			Name:     strings.TrimSpace(name),
			URL:      strings.TrimSpace(url),
			Priority: priority,
		})
	}
	return servers, nil
}
