package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/api/middleware"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
)

// AuthHandler implements the login fan-out: one client login is multiplexed
// into parallel logins against every registered upstream server.
type AuthHandler struct {
	*Deps
	onLoginFail    func(string)
	onLoginSuccess func(string)
}

func NewAuthHandler(d *Deps, onFail, onSuccess func(string)) *AuthHandler {
	return &AuthHandler{Deps: d, onLoginFail: onFail, onLoginSuccess: onSuccess}
}

type authenticateRequest struct {
	Username string `json:"Username" binding:"required"`
	Pw       string `json:"Pw"`
}

// upstreamLogin is one successful branch of a login fan-out.
type upstreamLogin struct {
	server       *ent.Server
	token        string
	remoteUserID string
	tree         map[string]any
}

// AuthenticateByName handles POST /Users/AuthenticateByName.
//
// The login fans out to every registered server in parallel: servers the user
// already has a mapping for are tried with the mapped credentials, the rest
// with the client-supplied ones. Every success stores a mapping and session;
// the response is synthesized from the highest-priority success with the
// proxy's identity substituted.
func (h *AuthHandler) AuthenticateByName(c *gin.Context) {
	var req authenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := middleware.ClientIP(c)
	ctx := c.Request.Context()

	auth := preprocess.ExtractAuth(c.Request)
	device := preprocess.DeviceFromRequest(c.Request, auth)

	user, err := h.Accounts.GetOrCreateUser(ctx, req.Username, req.Pw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	servers, err := h.Registry.List(ctx)
	if err != nil || len(servers) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No upstream servers available"})
		return
	}
	mappings, err := h.Accounts.ListMappings(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	byServer := make(map[string]*ent.ServerMapping, len(mappings))
	for _, m := range mappings {
		if m.Edges.Server != nil {
			byServer[m.Edges.Server.ID.String()] = m
		}
	}

	// One slot per server keeps results in priority order without a mutex.
	results := make([]*upstreamLogin, len(servers))
	var wg sync.WaitGroup
	for i, srv := range servers {
		username, password := req.Username, req.Pw
		if m := byServer[srv.ID.String()]; m != nil {
			username = m.RemoteUsername
			if plain, err := h.Accounts.DecryptMapping(m, req.Pw); err == nil {
				password = plain
			}
		}

		wg.Add(1)
		go func(i int, srv *ent.Server, username, password string) {
			defer wg.Done()
			branchCtx, cancel := context.WithTimeout(ctx, h.Cfg.UpstreamTimeout)
			defer cancel()

			login, err := h.loginUpstream(branchCtx, srv, username, password, device)
			if err != nil {
				slog.Debug("upstream login failed", "server", srv.Name, "user", req.Username, "error", err)
				return
			}
			m, err := h.Accounts.AddMapping(ctx, user, req.Pw, srv, username, password)
			if err != nil {
				slog.Warn("storing mapping failed", "server", srv.Name, "error", err)
				return
			}
			if _, err := h.Accounts.StoreSession(ctx, user, m, login.token, login.remoteUserID, device, h.Cfg.SessionTTL); err != nil {
				slog.Warn("storing session failed", "server", srv.Name, "error", err)
				return
			}
			results[i] = login
		}(i, srv, username, password)
	}
	wg.Wait()

	var winner *upstreamLogin
	succeeded := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		succeeded++
		if winner == nil {
			winner = r
		}
	}
	if winner == nil {
		h.onLoginFail(ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	h.onLoginSuccess(ip)

	slog.Info("login fan-out complete",
		"user", req.Username, "succeeded", succeeded, "servers", len(servers),
		"primary", winner.server.Name)

	c.JSON(http.StatusOK, h.synthesizeAuthResponse(winner.tree, user, req.Username))
}

// loginUpstream performs one upstream AuthenticateByName call.
func (h *AuthHandler) loginUpstream(ctx context.Context, srv *ent.Server, username, password string, device accounts.DeviceInfo) (*upstreamLogin, error) {
	body, err := json.Marshal(map[string]string{"Username": username, "Pw": password})
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	header.Set("X-Emby-Authorization", fmt.Sprintf(
		`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
		device.Client, device.DeviceName, device.DeviceID, device.Version))

	resp, err := h.Pool.For(srv, "").Forward(ctx, http.MethodPost, "/Users/AuthenticateByName", nil, header, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("unparseable auth response: %w", err)
	}

	login := &upstreamLogin{server: srv, tree: tree}
	login.token, _ = tree["AccessToken"].(string)
	if u, ok := tree["User"].(map[string]any); ok {
		login.remoteUserID, _ = u["Id"].(string)
	}
	if login.token == "" || login.remoteUserID == "" {
		return nil, fmt.Errorf("auth response missing token or user id")
	}
	return login, nil
}

// synthesizeAuthResponse rewrites the winning upstream auth response with the
// proxy's identity: virtual user ID and key, the proxy's server ID, admin and
// SyncPlay rights revoked.
func (h *AuthHandler) synthesizeAuthResponse(tree map[string]any, user *ent.User, username string) map[string]any {
	vid := virtualUserID(user)

	tree["AccessToken"] = user.VirtualKey
	tree["ServerId"] = h.Cfg.ServerID
	if u, ok := tree["User"].(map[string]any); ok {
		u["Id"] = vid
		u["Name"] = username
		u["ServerId"] = h.Cfg.ServerID
		if pol, ok := u["Policy"].(map[string]any); ok {
			pol["IsAdministrator"] = false
			pol["SyncPlayAccess"] = "None"
		}
	}
	if si, ok := tree["SessionInfo"].(map[string]any); ok {
		si["UserId"] = vid
		si["UserName"] = username
		si["ServerId"] = h.Cfg.ServerID
	}
	return tree
}

// virtualUserID is the client-visible spelling of a virtual user's ID, the
// simple UUID form Jellyfin uses.
func virtualUserID(user *ent.User) string {
	return strings.ReplaceAll(user.ID.String(), "-", "")
}

// Logout handles POST and DELETE /Sessions/Logout: every upstream session of
// the calling user is dropped, forcing a fresh fan-out on the next login.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := h.userFromToken(c)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	if n, err := h.Accounts.DeleteAllSessions(c.Request.Context(), user); err == nil {
		slog.Info("user logged out", "user", user.Username, "sessions", n)
	}
	c.Status(http.StatusNoContent)
}
