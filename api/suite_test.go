package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	_ "modernc.org/sqlite"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/api"
	"github.com/jellyswarrm/jellyswarrm/api/handler"
	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/ent/enttest"
	"github.com/jellyswarrm/jellyswarrm/idmap"
	"github.com/jellyswarrm/jellyswarrm/playsession"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
	"github.com/jellyswarrm/jellyswarrm/upstream"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

func init() {
	// modernc.org/sqlite registers as "sqlite"; ent expects "sqlite3".
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

var db *ent.Client

func TestAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Suite")
}

var _ = BeforeSuite(func() {
	gin.SetMode(gin.TestMode)
	db = enttest.Open(GinkgoT(), "sqlite3", "file:api_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

func cleanDB() {
	ctx := context.Background()
	db.AuditLog.Delete().ExecX(ctx)
	db.APIKey.Delete().ExecX(ctx)
	db.HealthCheck.Delete().ExecX(ctx)
	db.AuthSession.Delete().ExecX(ctx)
	db.MediaMapping.Delete().ExecX(ctx)
	db.MergedLibrarySource.Delete().ExecX(ctx)
	db.MergedLibrary.Delete().ExecX(ctx)
	db.ServerMapping.Delete().ExecX(ctx)
	db.User.Delete().ExecX(ctx)
	db.Server.Delete().ExecX(ctx)
}

const (
	testProxyID   = "f0e9d8c7b6a594837261504938271605"
	testAdminUser = "admin"
	testAdminPass = "test-admin-secret"
)

// testEnv is one fully wired proxy over the shared test database.
type testEnv struct {
	router   http.Handler
	stop     func()
	deps     *handler.Deps
	cfg      config.Config
	accounts *accounts.Service
	registry *upstream.Registry
	ids      *idmap.Store
	plays    *playsession.Tracker
}

func newEnv(mutate func(*config.Config)) *testEnv {
	cleanDB()

	cfg := config.Config{
		ServerID:            testProxyID,
		ServerName:          "Test Proxy",
		PublicAddress:       "localhost:3000",
		AdminUsername:       testAdminUser,
		AdminPassword:       testAdminPass,
		MasterKey:           "api-test-master-key",
		SessionKey:          []byte("0123456789abcdef0123456789abcdef"),
		UpstreamTimeout:     5 * time.Second,
		HealthCheckInterval: time.Hour,
		MediaStreamingMode:  config.StreamRedirect,
		SessionTTL:          time.Hour,
		LoginWindow:         time.Minute,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	guard := writeguard.New()
	registry := upstream.NewRegistry(db, guard)
	pool := upstream.NewPool(cfg)
	monitor := upstream.NewMonitor(db, pool, guard, cfg.HealthCheckInterval)
	pool.SetMonitor(monitor)
	registry.SetMonitor(monitor)

	acc := accounts.New(db, guard, cfg.MasterKey)
	ids := idmap.New(db, guard)
	plays := playsession.NewTracker()
	quick := accounts.NewQuickConnectStore()
	pre := &preprocess.Preprocessor{Accounts: acc, IDs: ids, Registry: registry, Config: cfg}

	deps := &handler.Deps{
		DB:       db,
		Cfg:      cfg,
		Guard:    guard,
		Accounts: acc,
		IDs:      ids,
		Registry: registry,
		Pool:     pool,
		Plays:    plays,
		Pre:      pre,
		Quick:    quick,
	}
	router, stopLimiter := api.NewRouter(deps)

	return &testEnv{
		router:   router,
		deps:     deps,
		cfg:      cfg,
		accounts: acc,
		registry: registry,
		ids:      ids,
		plays:    plays,
		stop: func() {
			stopLimiter()
			plays.Stop()
			ids.Stop()
		},
	}
}

func (e *testEnv) addServer(name, url string, priority int) *ent.Server {
	srv, err := e.registry.Add(context.Background(), name, url, priority)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return srv
}

// do issues one request against the proxy router. A non-empty token is sent
// as X-Emby-Token; a non-nil body is JSON-encoded.
func (e *testEnv) do(method, target, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		ExpectWithOffset(2, err).NotTo(HaveOccurred())
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Emby-Token", token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// adminDo issues one request against the admin API with basic credentials.
func (e *testEnv) adminDo(method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		ExpectWithOffset(2, err).NotTo(HaveOccurred())
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(testAdminUser, testAdminPass)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login authenticates through the fan-out and returns the response tree.
func (e *testEnv) login(username, password string) map[string]any {
	w := e.do(http.MethodPost, "/users/authenticatebyname", "", map[string]string{
		"Username": username,
		"Pw":       password,
	})
	ExpectWithOffset(1, w.Code).To(Equal(http.StatusOK), w.Body.String())
	return obj(w)
}

func obj(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	ExpectWithOffset(1, json.Unmarshal(w.Body.Bytes(), &out)).To(Succeed(), w.Body.String())
	return out
}

func arr(w *httptest.ResponseRecorder) []any {
	var out []any
	ExpectWithOffset(1, json.Unmarshal(w.Body.Bytes(), &out)).To(Succeed(), w.Body.String())
	return out
}

func items(w *httptest.ResponseRecorder) []map[string]any {
	tree := obj(w)
	raw, _ := tree["Items"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func itemNames(list []map[string]any) []string {
	names := make([]string, 0, len(list))
	for _, it := range list {
		if n, ok := it["Name"].(string); ok {
			names = append(names, n)
		}
	}
	return names
}

func jsonBody(v any) *bytes.Reader {
	b, err := json.Marshal(v)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return bytes.NewReader(b)
}

func hex32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ── Fake upstream Jellyfin ────────────────────────────────────────────────────

// fakeJellyfin is a minimal in-process Jellyfin upstream. Authenticated
// endpoints reject any token other than the fake's own, so a passing test
// proves the proxy substituted the real session token.
type fakeJellyfin struct {
	name     string
	password string
	userID   string
	token    string
	serverID string
	streamID string

	items         []map[string]any
	views         []map[string]any
	latest        []map[string]any
	itemsByParent map[string][]map[string]any

	mu         sync.Mutex
	authCalls  int
	socketKeys []string

	srv *httptest.Server
}

func newFakeJellyfin(name, password string) *fakeJellyfin {
	f := &fakeJellyfin{
		name:          name,
		password:      password,
		userID:        hex32(),
		token:         "real-token-" + name,
		serverID:      hex32(),
		streamID:      hex32(),
		itemsByParent: map[string][]map[string]any{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/authenticatebyname", f.handleAuth)
	mux.HandleFunc("GET /items", f.handleItems)
	mux.HandleFunc("GET /items/{id}", f.handleItem)
	mux.HandleFunc("GET /users/{uid}/views", f.handleViews)
	mux.HandleFunc("GET /userviews", f.handleViews)
	mux.HandleFunc("GET /users/{uid}/items/latest", f.handleLatest)
	mux.HandleFunc("GET /items/{id}/playbackinfo", f.handlePlaybackInfo)
	mux.HandleFunc("POST /items/{id}/playbackinfo", f.handlePlaybackInfo)
	mux.HandleFunc("GET /videos/{id}/stream", f.handleStream)
	mux.HandleFunc("GET /socket", f.handleSocket)
	mux.HandleFunc("GET /system/info", f.handleSystemInfo)
	mux.HandleFunc("GET /system/info/public", f.handleSystemInfoPublic)
	mux.HandleFunc("POST /users/{uid}/favoriteitems/{id}", f.handleFavorite(true))
	mux.HandleFunc("DELETE /users/{uid}/favoriteitems/{id}", f.handleFavorite(false))

	// Jellyfin routes are case-insensitive; the proxy forwards some paths
	// capitalized and some lowercased.
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = strings.ToLower(r.URL.Path)
		mux.ServeHTTP(w, r)
	}))
	return f
}

func (f *fakeJellyfin) URL() string { return f.srv.URL }
func (f *fakeJellyfin) Close()      { f.srv.Close() }

func (f *fakeJellyfin) AuthCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authCalls
}

func (f *fakeJellyfin) authorized(r *http.Request) bool {
	if r.Header.Get("X-Emby-Token") == f.token {
		return true
	}
	return r.URL.Query().Get("api_key") == f.token
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeJellyfin) handleAuth(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.authCalls++
	f.mu.Unlock()

	var req struct {
		Username string `json:"Username"`
		Pw       string `json:"Pw"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Pw != f.password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "bad credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"AccessToken": f.token,
		"ServerId":    f.serverID,
		"User": map[string]any{
			"Id":       f.userID,
			"Name":     req.Username,
			"ServerId": f.serverID,
			"Policy": map[string]any{
				"IsAdministrator": true,
				"SyncPlayAccess":  "CreateAndJoinGroups",
			},
		},
		"SessionInfo": map[string]any{
			"UserId":   f.userID,
			"UserName": req.Username,
			"ServerId": f.serverID,
		},
	})
}

func (f *fakeJellyfin) handleItems(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	list := f.items
	if parent := r.URL.Query().Get("ParentId"); parent != "" {
		list = f.itemsByParent[parent]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"Items":            list,
		"TotalRecordCount": len(list),
		"StartIndex":       0,
	})
}

func (f *fakeJellyfin) handleItem(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	id := r.PathValue("id")
	for _, it := range f.items {
		if it["Id"] == id {
			writeJSON(w, http.StatusOK, it)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
}

func (f *fakeJellyfin) handleViews(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	views := make([]map[string]any, 0, len(f.views))
	for _, v := range f.views {
		out := map[string]any{"ServerId": f.serverID}
		for k, val := range v {
			out[k] = val
		}
		views = append(views, out)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"Items":            views,
		"TotalRecordCount": len(views),
		"StartIndex":       0,
	})
}

func (f *fakeJellyfin) handleLatest(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	writeJSON(w, http.StatusOK, f.latest)
}

func (f *fakeJellyfin) handlePlaybackInfo(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	id := r.PathValue("id")
	writeJSON(w, http.StatusOK, map[string]any{
		"MediaSources": []any{
			map[string]any{
				"Id":             id,
				"Path":           "/media/" + id + ".mkv",
				"TranscodingUrl": "/videos/" + f.streamID + "/stream.m3u8?api_key=" + f.token,
			},
		},
		"PlaySessionId": f.streamID,
	})
}

var fakeUpgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// handleSocket records the api_key the proxy dialed with and echoes every
// frame back prefixed, so the test can prove the bridge pumps both ways.
func (f *fakeJellyfin) handleSocket(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.socketKeys = append(f.socketKeys, r.URL.Query().Get("api_key"))
	f.mu.Unlock()

	conn, err := fakeUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := conn.WriteMessage(kind, append([]byte("echo:"), payload...)); err != nil {
			return
		}
	}
}

func (f *fakeJellyfin) SocketKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.socketKeys...)
}

func (f *fakeJellyfin) handleStream(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	w.Header().Set("Content-Type", "video/x-matroska")
	_, _ = w.Write([]byte("mkv-bytes-" + r.PathValue("id")))
}

func (f *fakeJellyfin) handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"Id":         f.serverID,
		"ServerName": f.name,
		"Version":    "10.10.3",
	})
}

func (f *fakeJellyfin) handleSystemInfoPublic(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"Id":         f.serverID,
		"ServerName": f.name,
		"Version":    "10.10.3",
	})
}

func (f *fakeJellyfin) handleFavorite(favorite bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
			return
		}
		if r.PathValue("uid") != f.userID {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unknown user"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"IsFavorite":            favorite,
			"Played":                false,
			"PlaybackPositionTicks": 0,
		})
	}
}

// movie builds an upstream movie DTO with a real (upstream-space) ID.
func movie(id, name, imdb string) map[string]any {
	m := map[string]any{
		"Id":       id,
		"Name":     name,
		"Type":     "Movie",
		"IsFolder": false,
	}
	if imdb != "" {
		m["ProviderIds"] = map[string]any{"Imdb": imdb}
	}
	return m
}

// view builds an upstream library view DTO.
func view(id, name, collectionType string) map[string]any {
	return map[string]any{
		"Id":             id,
		"Name":           name,
		"Type":           "CollectionFolder",
		"CollectionType": collectionType,
		"IsFolder":       true,
	}
}
