package preprocess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/idmap"
	"github.com/jellyswarrm/jellyswarrm/jsonwalk"
	"github.com/jellyswarrm/jellyswarrm/upstream"
)

// ErrUnknownID is returned when a media-ID-bearing path segment carries a
// virtual ID with no mapping. Surfaced as 404.
var ErrUnknownID = errors.New("preprocess: unknown virtual id")

// maxBodyBytes bounds how much request body the preprocessor will buffer.
const maxBodyBytes = 8 << 20

// pathIDTags are the path segments whose following segment is a media ID.
// The first hit resolves the owning server.
var pathIDTags = map[string]bool{
	"items":             true,
	"shows":             true,
	"videos":            true,
	"playeditems":       true,
	"favoriteitems":     true,
	"mediasegments":     true,
	"playingitems":      true,
	"recordings":        true,
	"channels":          true,
	"programs":          true,
	"seriestimers":      true,
	"timers":            true,
	"userfavoriteitems": true,
	"useritems":         true,
	"userplayeditems":   true,
}

// queryIDKeys are the query parameters that may carry media IDs, in lookup
// order. Values may be comma-separated lists.
var queryIDKeys = []string{"ParentId", "SeriesId", "MediaSourceId", "Tag", "SeasonId", "startItemId", "Ids"}

// hopByHop are the headers that must not cross the proxy boundary.
var hopByHop = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailers",
	"Transfer-Encoding",
	"Upgrade",
}

// Preprocessor rewrites incoming requests for forwarding. One instance is
// shared by every handler.
type Preprocessor struct {
	Accounts *accounts.Service
	IDs      *idmap.Store
	Registry *upstream.Registry
	Config   config.Config
}

// Outbound is a rewritten request ready to send to one specific server.
type Outbound struct {
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Result is everything the preprocessor learned about one request, plus the
// outbound rewrite for the chosen server. Path, Query, Header and Body hold
// the incoming (virtual-space) request after prefix stripping; federation
// handlers call Rebind with them per branch.
type Result struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte

	Auth     Authorization
	Device   accounts.DeviceInfo
	User     *ent.User
	Sessions []*ent.AuthSession
	Analysis Analysis

	// Resolved is set when a virtual media ID in the URL or body picked the
	// server.
	Resolved *idmap.Resolved
	Server   *ent.Server
	// Session is the chosen session on Server; nil for unauthenticated
	// requests or servers the user has no session on.
	Session *ent.AuthSession

	Out Outbound
}

// Do runs the full preprocessing pipeline on an incoming request.
func (p *Preprocessor) Do(ctx context.Context, r *http.Request) (*Result, error) {
	res := &Result{
		Method: r.Method,
		Path:   p.stripPrefix(r.URL.Path),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	}

	if r.Body != nil && r.Body != http.NoBody {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("preprocess: reading body: %w", err)
		}
		res.Body = body
	}

	res.Auth = ExtractAuth(r)
	res.Device = DeviceFromRequest(r, res.Auth)

	if err := p.identifyUser(ctx, res); err != nil {
		return nil, err
	}

	if isJSON(res.Header, res.Body) {
		if tree, err := jsonwalk.Decode(res.Body); err == nil {
			res.Analysis = Analyze(tree)
		}
	}

	if res.User != nil {
		sessions, err := p.Accounts.GetSessions(ctx, res.User, &res.Device)
		if err != nil {
			return nil, err
		}
		res.Sessions = sessions
	}

	if err := p.resolveServer(ctx, res); err != nil {
		return nil, err
	}

	out, err := p.Rebind(ctx, res, res.Session, res.Server)
	if err != nil {
		return nil, err
	}
	res.Out = out
	return res, nil
}

// stripPrefix removes the configured URL prefix and the /emby or /jellyfin
// compatibility base from the incoming path.
func (p *Preprocessor) stripPrefix(path string) string {
	if prefix := p.Config.URLPrefix; prefix != "" {
		path = trimPathPrefix(path, "/"+prefix)
	}
	path = trimPathPrefix(path, "/emby")
	path = trimPathPrefix(path, "/jellyfin")
	if path == "" {
		path = "/"
	}
	return path
}

func trimPathPrefix(path, prefix string) string {
	if len(path) < len(prefix) || !strings.EqualFold(path[:len(prefix)], prefix) {
		return path
	}
	rest := path[len(prefix):]
	if rest != "" && rest[0] != '/' {
		return path
	}
	return rest
}

// identifyUser binds the request to a virtual user: by virtual key when the
// token is one, else by a virtual user ID in the path or query.
func (p *Preprocessor) identifyUser(ctx context.Context, res *Result) error {
	if res.Auth.HasToken() {
		u, err := p.Accounts.GetByVirtualKey(ctx, res.Auth.Token)
		if err == nil {
			res.User = u
			return nil
		}
		if !errors.Is(err, accounts.ErrNotFound) {
			return err
		}
	}

	id, ok := userIDIn(res.Path, res.Query)
	if !ok {
		return nil
	}
	u, err := p.Accounts.GetUserByID(ctx, id)
	if err == nil {
		res.User = u
	} else if !errors.Is(err, accounts.ErrNotFound) {
		return err
	}
	return nil
}

// userIDIn finds a virtual user ID in a Users/{id} path segment or a UserId
// query key.
func userIDIn(path string, query url.Values) (uuid.UUID, bool) {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	for i := 0; i+1 < len(segs); i++ {
		if strings.EqualFold(segs[i], "users") {
			if id, err := uuid.Parse(segs[i+1]); err == nil {
				return id, true
			}
		}
	}
	for k, vs := range query {
		if strings.EqualFold(k, "userid") && len(vs) > 0 {
			if id, err := uuid.Parse(vs[0]); err == nil {
				return id, true
			}
		}
	}
	return uuid.UUID{}, false
}

// resolveServer implements the resolution order: path media ID, query media
// ID, body hint, matching session, first session, best server.
func (p *Preprocessor) resolveServer(ctx context.Context, res *Result) error {
	// a. Path segments following a media-ID tag.
	segs := strings.Split(strings.Trim(res.Path, "/"), "/")
	for i := 0; i+1 < len(segs); i++ {
		if !pathIDTags[strings.ToLower(segs[i])] || !idmap.IsIDLike(segs[i+1]) {
			continue
		}
		r, srv, err := p.IDs.ResolveWithServer(ctx, segs[i+1])
		if errors.Is(err, idmap.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownID, segs[i+1])
		}
		if err != nil {
			return err
		}
		res.Resolved, res.Server = &r, srv
		break
	}

	// b. Known media-ID query keys. Unresolvable values are skipped; image
	// tags and foreign IDs routinely look like UUIDs.
	if res.Server == nil {
		for _, key := range queryIDKeys {
			v := queryValueFold(res.Query, key)
			if v == "" {
				continue
			}
			for _, candidate := range strings.Split(v, ",") {
				if !idmap.IsIDLike(candidate) {
					continue
				}
				if r, srv, err := p.IDs.ResolveWithServer(ctx, candidate); err == nil {
					res.Resolved, res.Server = &r, srv
					break
				}
			}
			if res.Server != nil {
				break
			}
		}
	}

	// c. Body hints.
	if res.Server == nil {
		for _, hint := range []string{res.Analysis.MediaSourceID, res.Analysis.ItemID} {
			if hint == "" || !idmap.IsIDLike(hint) {
				continue
			}
			if r, srv, err := p.IDs.ResolveWithServer(ctx, hint); err == nil {
				res.Resolved, res.Server = &r, srv
				break
			}
		}
	}

	// d. Session on the resolved server.
	if res.Server != nil {
		if sess, ok := accounts.SessionForServer(res.Sessions, res.Server.ID); ok {
			res.Session = sess
		}
		return nil
	}

	// e. Highest-priority session.
	if len(res.Sessions) > 0 {
		res.Session = res.Sessions[0]
		if m := res.Session.Edges.Mapping; m != nil && m.Edges.Server != nil {
			res.Server = m.Edges.Server
			return nil
		}
	}

	// f. Best registered server.
	srv, err := p.Registry.Best(ctx)
	if err != nil {
		return err
	}
	res.Server = srv
	return nil
}

// queryValueFold is url.Values.Get with case-insensitive keys, the way
// Jellyfin clients actually send them.
func queryValueFold(q url.Values, key string) string {
	for k, vs := range q {
		if strings.EqualFold(k, key) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

func setQueryValueFold(q url.Values, key, value string) {
	for k := range q {
		if strings.EqualFold(k, key) {
			q.Set(k, value)
			return
		}
	}
}

// Rebind produces the outbound rewrite of the preprocessed request for one
// (session, server) pair. Do calls it for the chosen pair; federation
// handlers call it once per branch.
func (p *Preprocessor) Rebind(ctx context.Context, res *Result, sess *ent.AuthSession, server *ent.Server) (Outbound, error) {
	out := Outbound{
		Query:  cloneQuery(res.Query),
		Header: res.Header.Clone(),
	}

	remoteUserID := ""
	token := ""
	if sess != nil {
		remoteUserID = sess.RemoteUserID
		token = sess.AccessToken
	}

	path, err := p.rewritePath(ctx, res.Path, remoteUserID)
	if err != nil {
		return Outbound{}, err
	}
	out.Path = path

	p.rewriteQuery(ctx, out.Query, remoteUserID)
	RemapToken(out.Header, out.Query, token)
	scrubHeader(out.Header)

	out.Body = res.Body
	if isJSON(res.Header, res.Body) {
		rewritten, changed := p.rewriteBody(ctx, res.Body, remoteUserID)
		if changed {
			out.Body = rewritten
			// The body is a fixed buffer again; stale framing headers must
			// not survive the rewrite.
			out.Header.Del("Content-Length")
			out.Header.Del("Transfer-Encoding")
		}
	}
	return out, nil
}

// rewritePath substitutes user IDs and virtual media IDs in path segments.
func (p *Preprocessor) rewritePath(ctx context.Context, path string, remoteUserID string) (string, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/", nil
	}
	segs := strings.Split(trimmed, "/")
	for i := 0; i < len(segs); i++ {
		// Users/{id} carries a user ID, not a media ID.
		if i > 0 && strings.EqualFold(segs[i-1], "users") && idmap.IsIDLike(segs[i]) {
			if remoteUserID != "" {
				segs[i] = remoteUserID
			}
			continue
		}
		if !idmap.IsIDLike(segs[i]) {
			continue
		}
		if r, err := p.IDs.Resolve(ctx, segs[i]); err == nil {
			segs[i] = r.OriginalID
		}
	}
	return "/" + strings.Join(segs, "/"), nil
}

// rewriteQuery substitutes user IDs and virtual media IDs in query values.
func (p *Preprocessor) rewriteQuery(ctx context.Context, q url.Values, remoteUserID string) {
	if remoteUserID != "" {
		for k, vs := range q {
			if strings.EqualFold(k, "userid") && len(vs) > 0 {
				q.Set(k, remoteUserID)
			}
		}
	}
	for _, key := range queryIDKeys {
		v := queryValueFold(q, key)
		if v == "" {
			continue
		}
		parts := strings.Split(v, ",")
		changed := false
		for i, part := range parts {
			if !idmap.IsIDLike(part) {
				continue
			}
			if r, err := p.IDs.Resolve(ctx, part); err == nil {
				parts[i] = r.OriginalID
				changed = true
			}
		}
		if changed {
			setQueryValueFold(q, key, strings.Join(parts, ","))
		}
	}
}

// rewriteBody walks a JSON body replacing UserId fields and any resolvable
// virtual media ID. Returns the re-encoded body and whether anything
// changed.
func (p *Preprocessor) rewriteBody(ctx context.Context, body []byte, remoteUserID string) ([]byte, bool) {
	tree, err := jsonwalk.Decode(body)
	if err != nil {
		return body, false
	}
	changed := false
	tree, _ = jsonwalk.Walk(tree, func(wctx *jsonwalk.Context, value any) (jsonwalk.Directive, error) {
		s, isString := value.(string)
		if !isString || s == "" {
			return jsonwalk.Keep(), nil
		}
		if remoteUserID != "" && strings.EqualFold(wctx.Key, "userid") {
			changed = true
			return jsonwalk.Replace(remoteUserID), nil
		}
		if idmap.IsIDLike(s) {
			if r, err := p.IDs.Resolve(ctx, s); err == nil {
				changed = true
				return jsonwalk.Replace(r.OriginalID), nil
			}
		}
		return jsonwalk.Keep(), nil
	})
	if !changed {
		return body, false
	}
	encoded, err := jsonwalk.Encode(tree)
	if err != nil {
		return body, false
	}
	return encoded, true
}

// scrubHeader removes hop-by-hop and framing headers that must not be
// forwarded.
func scrubHeader(h http.Header) {
	for _, name := range hopByHop {
		h.Del(name)
	}
	h.Del("Host")
	h.Del("Content-Length")
}

func cloneQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, vs := range q {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func isJSON(h http.Header, body []byte) bool {
	if len(body) == 0 {
		return false
	}
	ct := h.Get("Content-Type")
	if ct != "" && !strings.Contains(strings.ToLower(ct), "json") {
		return false
	}
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
