package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
)

var wsUpgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	// The proxy fronts arbitrary client apps; origin checks happen at the
	// CORS layer for the REST surface and would only break native clients
	// here.
	CheckOrigin: func(*http.Request) bool { return true },
}

var wsDialer = &websocket.Dialer{
	Proxy:            http.ProxyFromEnvironment,
	HandshakeTimeout: 10 * time.Second,
}

// Socket handles GET /socket: the Jellyfin session WebSocket. The client
// connection is upgraded, a companion connection is dialed to the resolved
// upstream with the real session token, and frames are pumped 1:1 both ways
// until either side closes.
func (d *Deps) Socket(c *gin.Context) {
	ctx := c.Request.Context()
	auth := preprocess.ExtractAuth(c.Request)

	var (
		server *ent.Server
		token  string
	)
	if auth.HasToken() {
		if user, err := d.Accounts.GetByVirtualKey(ctx, auth.Token); err == nil {
			sessions, err := d.Accounts.GetSessions(ctx, user, nil)
			if err == nil {
				for _, sess := range sessions {
					srv := sessionServer(sess)
					if srv != nil && d.Pool.Monitor().IsAvailable(srv.ID) {
						server, token = srv, sess.AccessToken
						break
					}
				}
			}
		}
	}
	if server == nil {
		srv, err := d.Registry.Best(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "No upstream servers available"})
			return
		}
		server = srv
	}

	upstreamURL := wsURL(server, c.Request.URL.Path, token, c.Query("deviceId"))

	up, resp, err := wsDialer.Dial(upstreamURL, nil)
	if err != nil {
		status := http.StatusBadGateway
		if resp != nil {
			status = resp.StatusCode
		}
		slog.Warn("upstream websocket dial failed", "server", server.Name, "status", status, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream unavailable"})
		return
	}

	down, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		_ = up.Close()
		return
	}
	slog.Info("websocket bridged", "server", server.Name)

	errc := make(chan error, 2)
	go pump(down, up, errc)
	go pump(up, down, errc)
	<-errc

	_ = down.Close()
	_ = up.Close()
}

// pump copies frames from src to dst until either side fails.
func pump(src, dst *websocket.Conn, errc chan<- error) {
	for {
		kind, payload, err := src.ReadMessage()
		if err != nil {
			errc <- err
			return
		}
		if err := dst.WriteMessage(kind, payload); err != nil {
			errc <- err
			return
		}
	}
}

// wsURL builds the upstream socket URL: ws/wss per the server's scheme, the
// original path, and the real session token replacing the virtual one.
func wsURL(server *ent.Server, path, token, deviceID string) string {
	base := strings.TrimRight(server.URL, "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}

	q := url.Values{}
	if token != "" {
		q.Set("api_key", token)
	}
	if deviceID != "" {
		q.Set("deviceId", deviceID)
	}
	u := base + path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
