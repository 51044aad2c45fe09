package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
)

// branchResult is one server's contribution to a federated response.
type branchResult struct {
	server *ent.Server
	items  []any
	tree   map[string]any
}

// Federated handles the list endpoints that aggregate across servers:
// /Items, /Users/{id}/Items, /Users/{id}/Items/Resume, Latest, NextUp,
// /Persons, /Artists, /Genres and friends. The request fans out to every
// server the user has a session on and the item lists are interleaved
// round-robin, so every server's catalog surfaces near the top.
//
// A request already pinned to one server by ID resolution (a SeriesId or
// ParentId that maps to a single upstream) skips the fan-out and proxies to
// that server alone.
func (d *Deps) Federated(c *gin.Context) {
	res := d.preprocessOrAbort(c)
	if res == nil {
		return
	}
	if res.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if merged := d.mergedLibraryTarget(c.Request.Context(), res); merged != nil {
		d.mergedLibraryItems(c, res, merged)
		return
	}
	if res.Resolved != nil {
		d.federatedSingle(c, res)
		return
	}
	d.federatedFanOut(c, res)
}

// federatedSingle proxies a server-pinned list request and virtualizes the
// response.
func (d *Deps) federatedSingle(c *gin.Context, res *preprocess.Result) {
	if res.Session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No session on resolved server"})
		return
	}
	body, status, err := d.Pool.For(res.Server, res.Session.AccessToken).
		ProxyJSON(c.Request.Context(), res.Method, res.Out.Path, res.Out.Query, res.Out.Body)
	if err != nil {
		d.Pool.Monitor().RecordRequestFailure(res.Server.ID, res.Server.Name)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream unavailable"})
		return
	}
	d.Pool.Monitor().RecordRequestSuccess(res.Server.ID)
	if status < 200 || status >= 300 {
		c.Data(status, "application/json", body)
		return
	}

	var tree any
	if err := json.Unmarshal(body, &tree); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unparseable upstream response"})
		return
	}
	tree, err = d.virtualizeTree(c.Request.Context(), tree, res.Server, res.Session.RemoteUserID, virtualUserID(res.User))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, tree)
}

// federatedFanOut queries every available session-holding server in parallel
// and merges the results.
func (d *Deps) federatedFanOut(c *gin.Context, res *preprocess.Result) {
	branches := d.fanOut(c.Request.Context(), res, res.Sessions)
	if len(branches) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No upstream servers available"})
		return
	}

	// Bare-array endpoints (Latest) come back without a wrapper; keep the
	// shape the first branch produced.
	bare := branches[0].tree == nil
	items := interleave(branches)

	if bare {
		c.JSON(http.StatusOK, items)
		return
	}
	out := branches[0].tree
	out["Items"] = items
	out["TotalRecordCount"] = len(items)
	out["StartIndex"] = 0
	c.JSON(http.StatusOK, out)
}

// fanOut issues the preprocessed request against every available server the
// user holds a session on, virtualizes each response, and returns the
// successful branches in session (priority) order. One branch per server:
// when a user holds several sessions on the same server (different devices),
// only the first in priority order is queried.
func (d *Deps) fanOut(ctx context.Context, res *preprocess.Result, sessions []*ent.AuthSession) []*branchResult {
	vuid := virtualUserID(res.User)

	results := make([]*branchResult, len(sessions))
	queried := make(map[uuid.UUID]bool, len(sessions))
	var wg sync.WaitGroup
	for i, sess := range sessions {
		srv := sessionServer(sess)
		if srv == nil || queried[srv.ID] || !d.Pool.Monitor().IsAvailable(srv.ID) {
			continue
		}
		queried[srv.ID] = true

		wg.Add(1)
		go func(i int, sess *ent.AuthSession, srv *ent.Server) {
			defer wg.Done()
			branchCtx, cancel := context.WithTimeout(ctx, d.Cfg.UpstreamTimeout)
			defer cancel()

			out, err := d.Pre.Rebind(branchCtx, res, sess, srv)
			if err != nil {
				slog.Debug("branch rebind failed", "server", srv.Name, "error", err)
				return
			}
			body, status, err := d.Pool.For(srv, sess.AccessToken).
				ProxyJSON(branchCtx, res.Method, out.Path, out.Query, out.Body)
			if err != nil {
				d.Pool.Monitor().RecordRequestFailure(srv.ID, srv.Name)
				slog.Debug("branch request failed", "server", srv.Name, "error", err)
				return
			}
			d.Pool.Monitor().RecordRequestSuccess(srv.ID)
			if status < 200 || status >= 300 {
				slog.Debug("branch request rejected", "server", srv.Name, "status", status)
				return
			}

			var tree any
			if err := json.Unmarshal(body, &tree); err != nil {
				slog.Debug("branch response unparseable", "server", srv.Name, "error", err)
				return
			}
			tree, err = d.virtualizeTree(branchCtx, tree, srv, sess.RemoteUserID, vuid)
			if err != nil {
				slog.Debug("branch virtualization failed", "server", srv.Name, "error", err)
				return
			}

			br := &branchResult{server: srv}
			switch t := tree.(type) {
			case map[string]any:
				br.tree = t
				br.items, _ = t["Items"].([]any)
			case []any:
				br.items = t
			}
			results[i] = br
		}(i, sess, srv)
	}
	wg.Wait()

	var out []*branchResult
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// interleave merges the branch item lists round-robin: first item of each
// server, then second of each, until all are drained.
func interleave(branches []*branchResult) []any {
	total := 0
	for _, b := range branches {
		total += len(b.items)
	}
	merged := make([]any, 0, total)
	for i := 0; len(merged) < total; i++ {
		for _, b := range branches {
			if i < len(b.items) {
				merged = append(merged, b.items[i])
			}
		}
	}
	return merged
}

// sessionServer returns the server a session belongs to, via its mapping.
func sessionServer(sess *ent.AuthSession) *ent.Server {
	if m := sess.Edges.Mapping; m != nil {
		return m.Edges.Server
	}
	return nil
}
