package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jellyswarrm/jellyswarrm/ent"
)

// Client is a ready-to-use HTTP client for one upstream server with a session
// token already resolved. Obtain one via Pool.For; do not construct directly.
type Client struct {
	server *ent.Server
	token  string
	pool   *Pool
}

// Server returns the upstream server row this client talks to.
func (c *Client) Server() *ent.Server { return c.server }

// Token returns the real upstream access token used for this connection.
func (c *Client) Token() string { return c.token }

// BaseURL returns the upstream server's base URL without a trailing slash.
func (c *Client) BaseURL() string { return strings.TrimRight(c.server.URL, "/") }

// DirectURL builds a fully-qualified URL pointing straight at the upstream,
// with query params encoded and the real api_key injected. Used for redirect
// streaming so the client fetches bytes from the upstream without transiting
// the proxy.
func (c *Client) DirectURL(path string, query url.Values) string {
	q := make(url.Values, len(query)+1)
	for k, v := range query {
		q[k] = v
	}
	if c.token != "" {
		q.Set("api_key", c.token)
	}
	u := c.BaseURL() + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// ProxyJSON forwards a request to the upstream, buffers the full response
// and returns the body with the upstream's HTTP status code. A network-level
// failure is returned as a non-nil error and counted against the server's
// circuit breaker; HTTP-level failures (4xx, 5xx) are signalled only via the
// returned status code.
func (c *Client) ProxyJSON(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, int, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.pool.jsonClient.Do(req)
	if err != nil {
		c.recordFailure()
		return nil, 0, fmt.Errorf("upstream request to %s failed: %w", c.server.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()
	c.recordSuccess()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading upstream response: %w", err)
	}
	return raw, resp.StatusCode, nil
}

// Forward sends a fully prepared request to the upstream and returns the raw
// response. The caller owns the response body. Header is copied verbatim, so
// callers must have finished any rewriting (tokens, hop-by-hop hygiene)
// before calling.
func (c *Client) Forward(ctx context.Context, method, path string, query url.Values, header http.Header, body []byte) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	if c.token != "" {
		req.Header.Set("X-Emby-Token", c.token)
	}

	resp, err := c.pool.jsonClient.Do(req)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("upstream request to %s failed: %w", c.server.Name, err)
	}
	c.recordSuccess()
	return resp, nil
}

// ProxyStream forwards a streaming request (video/audio) to the upstream and
// pipes the response body directly to w without buffering.
//
// The Range header is forwarded so clients can seek into the stream. Flushes
// after every write so transcoding segments reach the client immediately
// instead of buffering inside the proxy.
func (c *Client) ProxyStream(ctx context.Context, method, path string, query url.Values, inHeader http.Header, w http.ResponseWriter) error {
	req, err := c.newRequest(ctx, method, path, query, nil)
	if err != nil {
		return err
	}

	if r := inHeader.Get("Range"); r != "" {
		req.Header.Set("Range", r)
	}
	// Ask the upstream not to buffer either.
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := c.pool.streamClient.Do(req)
	if err != nil {
		c.recordFailure()
		return fmt.Errorf("upstream stream request to %s failed: %w", c.server.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()
	c.recordSuccess()

	copyStreamHeaders(resp.Header, w.Header())
	w.WriteHeader(resp.StatusCode)

	// Flush-on-write: get the flusher once, then copy in chunks and flush.
	flusher, canFlush := w.(http.Flusher)
	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				return writeErr
			}
			if canFlush {
				flusher.Flush()
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	var reqBody io.Reader
	if len(body) > 0 {
		reqBody = bytes.NewReader(body)
	}
	u := c.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("X-Emby-Token", c.token)
	}
	return req, nil
}

func (c *Client) recordFailure() {
	if c.pool.health != nil {
		c.pool.health.RecordRequestFailure(c.server.ID, c.server.Name)
	}
}

func (c *Client) recordSuccess() {
	if c.pool.health != nil {
		c.pool.health.RecordRequestSuccess(c.server.ID)
	}
}

// copyStreamHeaders selectively copies upstream response headers required for
// media playback, discarding anything that would reveal the upstream's
// identity or interfere with the proxy.
func copyStreamHeaders(src, dst http.Header) {
	for _, h := range []string{
		"Content-Type",
		"Content-Length",
		"Content-Range",
		"Content-Disposition",
		"Accept-Ranges",
		"X-Content-Duration",
		"Cache-Control",
	} {
		if v := src.Get(h); v != "" {
			dst.Set(h, v)
		}
	}
}
