package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
)

// quickConnectJSON is the wire form of a handshake, matching what Jellyfin
// clients expect from the Quick Connect endpoints.
func quickConnectJSON(e accounts.QuickConnectEntry) gin.H {
	return gin.H{
		"Authenticated": e.Authenticated,
		"Secret":        e.Secret,
		"Code":          e.Code,
		"DeviceId":      e.Device.DeviceID,
		"DeviceName":    e.Device.DeviceName,
		"AppName":       e.Device.Client,
		"AppVersion":    e.Device.Version,
		"DateAdded":     e.Added.UTC().Format(time.RFC3339Nano),
	}
}

// QuickConnectEnabled handles GET /QuickConnect/Enabled.
func (h *AuthHandler) QuickConnectEnabled(c *gin.Context) {
	c.JSON(http.StatusOK, true)
}

// QuickConnectInitiate handles POST /QuickConnect/Initiate: a new handshake
// for the calling device, identified from its MediaBrowser header.
func (h *AuthHandler) QuickConnectInitiate(c *gin.Context) {
	auth := preprocess.ExtractAuth(c.Request)
	device := preprocess.DeviceFromRequest(c.Request, auth)

	e := h.Quick.Initiate(device)
	slog.Info("quick connect initiated",
		"code", e.Code, "device", device.DeviceName, "client", device.Client)
	c.JSON(http.StatusOK, quickConnectJSON(*e))
}

// QuickConnectConnect handles GET /QuickConnect/Connect?secret=: the poll a
// waiting device makes until its code is approved.
func (h *AuthHandler) QuickConnectConnect(c *gin.Context) {
	e, ok := h.Quick.BySecret(c.Query("secret"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown secret"})
		return
	}
	c.JSON(http.StatusOK, quickConnectJSON(e))
}

// QuickConnectAuthorize handles POST /QuickConnect/Authorize?code=: an
// already-authenticated user approves the code shown on the waiting device.
func (h *AuthHandler) QuickConnectAuthorize(c *gin.Context) {
	user, ok := h.userFromToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	code := c.Query("code")
	if !h.Quick.Authorize(code, user.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown code"})
		return
	}
	slog.Info("quick connect authorized", "code", code, "user", user.Username)
	c.JSON(http.StatusOK, true)
}

type quickConnectExchange struct {
	Secret string `json:"Secret" binding:"required"`
}

// AuthenticateWithQuickConnect handles POST /Users/AuthenticateWithQuickConnect.
//
// The handshake must have been approved; its secret is consumed here. The
// approving user's password is not available, so the fan-out covers only
// servers the user already has mappings for, relying on the stored
// credentials. The device identity comes from the handshake, not from this
// request's headers.
func (h *AuthHandler) AuthenticateWithQuickConnect(c *gin.Context) {
	var req quickConnectExchange
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	e, ok := h.Quick.Consume(req.Secret)
	if !ok || !e.Authenticated || e.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Quick Connect session not authorized"})
		return
	}

	user, err := h.Accounts.GetUserByID(ctx, e.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
		return
	}

	mappings, err := h.Accounts.ListMappings(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if len(mappings) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No server mappings for user"})
		return
	}

	results := make([]*upstreamLogin, len(mappings))
	var wg sync.WaitGroup
	for i, m := range mappings {
		srv := m.Edges.Server
		if srv == nil {
			continue
		}
		username := m.RemoteUsername
		password, err := h.Accounts.DecryptMapping(m, "")
		if err != nil {
			slog.Warn("quick connect cannot recover credentials",
				"server", srv.Name, "user", user.Username, "error", err)
			continue
		}

		wg.Add(1)
		go func(i int, m *ent.ServerMapping, srv *ent.Server, username, password string) {
			defer wg.Done()
			branchCtx, cancel := context.WithTimeout(ctx, h.Cfg.UpstreamTimeout)
			defer cancel()

			login, err := h.loginUpstream(branchCtx, srv, username, password, e.Device)
			if err != nil {
				slog.Debug("quick connect upstream login failed", "server", srv.Name, "error", err)
				return
			}
			if _, err := h.Accounts.StoreSession(ctx, user, m, login.token, login.remoteUserID, e.Device, h.Cfg.SessionTTL); err != nil {
				slog.Warn("storing session failed", "server", srv.Name, "error", err)
				return
			}
			results[i] = login
		}(i, m, srv, username, password)
	}
	wg.Wait()

	var winner *upstreamLogin
	for _, r := range results {
		if r != nil {
			winner = r
			break
		}
	}
	if winner == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Quick Connect authentication failed"})
		return
	}

	slog.Info("quick connect login complete", "user", user.Username, "primary", winner.server.Name)
	c.JSON(http.StatusOK, h.synthesizeAuthResponse(winner.tree, user, user.Username))
}
