package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionsPlaying handles POST /Sessions/Playing, /Progress and /Stopped:
// the play-state reports clients send while watching. The report must name a
// known media source so it can be relayed to the one server that owns the
// item; a report about an unknown item is a 404, a report for a server the
// user holds no session on a 401.
func (d *Deps) SessionsPlaying(c *gin.Context) {
	res := d.preprocessOrAbort(c)
	if res == nil {
		return
	}
	if res.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if res.Resolved == nil {
		slog.Debug("play-state report for unknown item",
			"media_source", res.Analysis.MediaSourceID, "item", res.Analysis.ItemID)
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown media source"})
		return
	}
	if res.Session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No session on item's server"})
		return
	}

	_, status, err := d.Pool.For(res.Server, res.Session.AccessToken).
		ProxyJSON(c.Request.Context(), res.Method, res.Out.Path, res.Out.Query, res.Out.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream unavailable"})
		return
	}
	c.Status(status)
}

// PlayedItem handles POST and DELETE /Users/{id}/PlayedItems/{itemId} and
// /FavoriteItems/{itemId}: single-item state flips that route to the owning
// server through ID resolution.
func (d *Deps) PlayedItem(c *gin.Context) {
	res := d.preprocessOrAbort(c)
	if res == nil {
		return
	}
	if res.Session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	body, status, err := d.Pool.For(res.Server, res.Session.AccessToken).
		ProxyJSON(c.Request.Context(), res.Method, res.Out.Path, res.Out.Query, res.Out.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream unavailable"})
		return
	}
	if status < 200 || status >= 300 || len(body) == 0 {
		c.Status(status)
		return
	}
	c.Data(status, "application/json", body)
}
