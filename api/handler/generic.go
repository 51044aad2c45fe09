package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

// hop-by-hop headers never forwarded to the client.
var hopHeaders = []string{
	"Connection", "Keep-Alive", "Proxy-Authenticate", "Proxy-Authorization",
	"Te", "Trailer", "Transfer-Encoding", "Upgrade",
}

// Generic is the catch-all for every Jellyfin endpoint without a dedicated
// handler: preprocess, forward to the resolved server, and virtualize JSON
// responses on the way back. Non-JSON bodies (images, fonts, web assets)
// pass through untouched.
func (d *Deps) Generic(c *gin.Context) {
	res := d.preprocessOrAbort(c)
	if res == nil {
		return
	}

	token := ""
	if res.Session != nil {
		token = res.Session.AccessToken
	}
	resp, err := d.Pool.For(res.Server, token).
		Forward(c.Request.Context(), res.Method, res.Out.Path, res.Out.Query, res.Out.Header, res.Out.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream unavailable"})
		return
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream read failed"})
		return
	}

	contentType := resp.Header.Get("Content-Type")

	// Only successful JSON bodies carry IDs worth rewriting.
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && looksJSON(contentType, body) && res.User != nil {
		remoteUserID := ""
		if res.Session != nil {
			remoteUserID = res.Session.RemoteUserID
		}
		var tree any
		if err := json.Unmarshal(body, &tree); err == nil {
			tree, err = d.virtualizeTree(c.Request.Context(), tree, res.Server, remoteUserID, virtualUserID(res.User))
			if err != nil {
				slog.Warn("response virtualization failed", "path", res.Path, "error", err)
			} else if rewritten, err := json.Marshal(tree); err == nil {
				body = rewritten
			}
		}
	}

	copyHeader(c.Writer.Header(), resp.Header)
	if contentType == "" && len(body) > 0 {
		contentType = mimetype.Detect(body).String()
	}
	c.Data(resp.StatusCode, contentType, body)
}

func looksJSON(contentType string, body []byte) bool {
	if strings.Contains(contentType, "json") {
		return true
	}
	if contentType != "" {
		return false
	}
	trimmed := strings.TrimLeft(string(body), " \t\r\n")
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func copyHeader(dst, src http.Header) {
	for k, vs := range src {
		if k == "Content-Type" || k == "Content-Length" {
			continue
		}
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
	for _, h := range hopHeaders {
		dst.Del(h)
	}
}
