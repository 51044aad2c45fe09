// Package handler implements the HTTP surface of the proxy: the Jellyfin
// emulation (login fan-out, federated browsing, playback, streaming,
// WebSocket) and the admin REST API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/idmap"
	"github.com/jellyswarrm/jellyswarrm/playsession"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
	"github.com/jellyswarrm/jellyswarrm/upstream"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

// Deps bundles the services every handler draws on. Built once in main and
// shared; all fields are safe for concurrent use.
type Deps struct {
	DB       *ent.Client
	Cfg      config.Config
	Guard    *writeguard.Guard
	Accounts *accounts.Service
	IDs      *idmap.Store
	Registry *upstream.Registry
	Pool     *upstream.Pool
	Plays    *playsession.Tracker
	Pre      *preprocess.Preprocessor
	Quick    *accounts.QuickConnectStore
}

// preprocessOrAbort runs the preprocessor and translates its failures into
// HTTP statuses. Returns nil after writing the error response.
func (d *Deps) preprocessOrAbort(c *gin.Context) *preprocess.Result {
	res, err := d.Pre.Do(c.Request.Context(), c.Request)
	if err != nil {
		abortPreprocess(c, err)
		return nil
	}
	return res
}

func abortPreprocess(c *gin.Context, err error) {
	switch {
	case errors.Is(err, preprocess.ErrUnknownID):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, upstream.ErrNoServers):
		c.JSON(http.StatusBadGateway, gin.H{"error": "No upstream servers available"})
	case errors.Is(err, idmap.ErrContention), errors.Is(err, writeguard.ErrTimeout):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transient storage error, retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// userFromToken resolves the virtual user behind the request's bearer token.
func (d *Deps) userFromToken(c *gin.Context) (*ent.User, bool) {
	auth := preprocess.ExtractAuth(c.Request)
	if !auth.HasToken() {
		return nil, false
	}
	u, err := d.Accounts.GetByVirtualKey(c.Request.Context(), auth.Token)
	if err != nil {
		return nil, false
	}
	return u, true
}

func fallback(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
