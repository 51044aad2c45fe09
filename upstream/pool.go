// Package upstream manages the federated Jellyfin servers: the persistent
// registry, per-server HTTP clients over shared transports, and the health
// monitor that keeps dead servers out of fan-outs.
package upstream

import (
	"net"
	"net/http"
	"time"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
)

// Pool owns the HTTP transports shared by every upstream client. One Pool is
// created at startup and handed to the handlers via the registry.
type Pool struct {
	cfg          config.Config
	jsonClient   *http.Client // bounded timeout, for API calls
	streamClient *http.Client // no total timeout, for media bytes
	health       *Monitor
}

func NewPool(cfg config.Config) *Pool {
	// JSON transport: short timeouts for API calls.
	jsonTransport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		MaxIdleConnsPerHost:   10,
	}
	// Stream transport: long header timeout because the upstream may spend
	// many seconds transcoding before the first byte of a segment exists.
	// No total timeout; streams run indefinitely.
	streamTransport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 5 * time.Minute,
		MaxIdleConnsPerHost:   20,
		DisableCompression:    true, // avoid buffering compressed streams
	}
	return &Pool{
		cfg: cfg,
		jsonClient: &http.Client{
			Transport: jsonTransport,
			Timeout:   cfg.UpstreamTimeout,
		},
		streamClient: &http.Client{
			Transport: streamTransport,
			Timeout:   0,
		},
	}
}

// SetMonitor attaches the health monitor. Must be called before the pool
// serves requests.
func (p *Pool) SetMonitor(m *Monitor) {
	p.health = m
}

// Monitor returns the attached health monitor, or nil if none is set.
func (p *Pool) Monitor() *Monitor {
	return p.health
}

// For returns a client for one upstream server, authenticated with the given
// session token. An empty token yields an unauthenticated client, used for
// public endpoints like images and system info.
func (p *Pool) For(server *ent.Server, token string) *Client {
	return &Client{server: server, token: token, pool: p}
}
