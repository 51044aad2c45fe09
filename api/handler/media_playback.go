package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/playsession"
)

// PlaybackInfo handles POST /Items/{id}/PlaybackInfo and /LiveStreams/Open.
// The preprocessor pins the request to the item's server; the response's
// media sources are virtualized and any transcoding URLs are registered with
// the play-session tracker so the byte streams that follow find the same
// server.
func (d *Deps) PlaybackInfo(c *gin.Context) {
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
	if status < 200 || status >= 300 {
		c.Data(status, "application/json", body)
		return
	}

	var tree map[string]any
	if err := json.Unmarshal(body, &tree); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unparseable upstream response"})
		return
	}

	// Register stream routes before virtualization rewrites anything; the
	// transcoder URL carries the upstream's own stream ID.
	if sources, ok := tree["MediaSources"].([]any); ok {
		for _, s := range sources {
			src, ok := s.(map[string]any)
			if !ok {
				continue
			}
			u, _ := src["TranscodingUrl"].(string)
			if u == "" {
				continue
			}
			if streamID, ok := playsession.StreamIDFromTranscodingURL(u); ok {
				d.Plays.Track(streamID, res.Server.ID)
				slog.Debug("play session tracked", "stream", streamID, "server", res.Server.Name)
			}
		}
	}

	out, err := d.virtualizeTree(c.Request.Context(), any(tree), res.Server, res.Session.RemoteUserID, virtualUserID(res.User))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// VideoResource handles the transcoder byte streams: HLS playlists and
// segments, subtitles, attachments. These arrive with the upstream's own
// stream ID in the path, so routing goes through the play-session tracker
// rather than the media-ID store; an untracked stream is a 404.
func (d *Deps) VideoResource(c *gin.Context) {
	streamID, ok := playsession.StreamIDFromTranscodingURL(c.Request.URL.Path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	serverID, ok := d.Plays.Lookup(streamID)
	if !ok {
		slog.Debug("no play session for stream", "stream", streamID)
		c.JSON(http.StatusNotFound, gin.H{"error": "No play session for stream"})
		return
	}
	srv, err := d.Registry.ByID(c.Request.Context(), serverID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Server gone"})
		return
	}

	client := d.Pool.For(srv, "")
	switch d.Cfg.MediaStreamingMode {
	case config.StreamRedirect:
		c.Redirect(http.StatusTemporaryRedirect, client.DirectURL(c.Request.URL.Path, c.Request.URL.Query()))
	default:
		if err := client.ProxyStream(c.Request.Context(), c.Request.Method,
			c.Request.URL.Path, c.Request.URL.Query(), c.Request.Header, c.Writer); err != nil {
			slog.Debug("stream proxy ended", "stream", streamID, "error", err)
		}
	}
}

// VideoSubpath splits the /Videos/{id}/... tree: direct streams resolve
// through the media-ID store, everything else (HLS playlists and segments,
// subtitles, attachments) through the play-session tracker.
func (d *Deps) VideoSubpath(c *gin.Context) {
	sub := strings.TrimPrefix(c.Param("subpath"), "/")
	if sub == "stream" || strings.HasPrefix(sub, "stream.") {
		d.Stream(c)
		return
	}
	d.VideoResource(c)
}

// AudioSubpath splits /Audio/{id}/... the same way; universal and direct
// streams are item-addressed, transcoder output is session-addressed.
func (d *Deps) AudioSubpath(c *gin.Context) {
	sub := strings.TrimPrefix(c.Param("subpath"), "/")
	if sub == "stream" || strings.HasPrefix(sub, "stream.") || sub == "universal" {
		d.Stream(c)
		return
	}
	d.VideoResource(c)
}

// Stream handles the direct-play endpoints, /Videos/{id}/stream and
// /Audio/{id}/stream: the item ID resolves through the media-ID store like
// any other request, then the bytes either redirect or flow through.
func (d *Deps) Stream(c *gin.Context) {
	res := d.preprocessOrAbort(c)
	if res == nil {
		return
	}
	if res.Session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	client := d.Pool.For(res.Server, res.Session.AccessToken)
	switch d.Cfg.MediaStreamingMode {
	case config.StreamRedirect:
		c.Redirect(http.StatusTemporaryRedirect, client.DirectURL(res.Out.Path, res.Out.Query))
	default:
		if err := client.ProxyStream(c.Request.Context(), res.Method,
			res.Out.Path, res.Out.Query, res.Out.Header, c.Writer); err != nil {
			slog.Debug("stream proxy ended", "path", res.Out.Path, "error", err)
		}
	}
}
