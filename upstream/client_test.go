package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/upstream"
)

var _ = Describe("Client", func() {
	var (
		ctx  context.Context
		pool *upstream.Pool
	)

	BeforeEach(func() {
		ctx = context.Background()
		pool = upstream.NewPool(config.Config{})
	})

	serverFor := func(ts *httptest.Server) *ent.Server {
		return &ent.Server{Name: "fake", URL: ts.URL}
	}

	Describe("ProxyJSON", func() {
		It("sends the session token and returns body and status", func() {
			var gotToken string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotToken = r.Header.Get("X-Emby-Token")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			DeferCleanup(ts.Close)

			c := pool.For(serverFor(ts), "real-token")
			body, status, err := c.ProxyJSON(ctx, http.MethodPost, "/Items", nil, []byte(`{"a":1}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated))
			Expect(body).To(MatchJSON(`{"ok":true}`))
			Expect(gotToken).To(Equal("real-token"))
		})

		It("omits the token header for unauthenticated clients", func() {
			var hadToken bool
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, hadToken = r.Header["X-Emby-Token"]
				_, _ = w.Write([]byte(`{}`))
			}))
			DeferCleanup(ts.Close)

			c := pool.For(serverFor(ts), "")
			_, _, err := c.ProxyJSON(ctx, http.MethodGet, "/System/Info/Public", nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(hadToken).To(BeFalse())
		})

		It("passes non-2xx statuses through without an error", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			DeferCleanup(ts.Close)

			c := pool.For(serverFor(ts), "t")
			body, status, err := c.ProxyJSON(ctx, http.MethodGet, "/Items", nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusUnauthorized))
			Expect(body).To(MatchJSON(`{"error":"nope"}`))
		})

		It("returns an error for network-level failures", func() {
			c := pool.For(&ent.Server{Name: "down", URL: "http://127.0.0.1:1"}, "t")
			_, _, err := c.ProxyJSON(ctx, http.MethodGet, "/Items", nil, nil)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Forward", func() {
		It("copies the prepared header verbatim and keeps the real token", func() {
			var got http.Header
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Clone()
				_, _ = w.Write([]byte(`{}`))
			}))
			DeferCleanup(ts.Close)

			header := http.Header{}
			header.Set("X-Custom", "v")
			header.Set("Range", "bytes=0-100")

			c := pool.For(serverFor(ts), "real-token")
			resp, err := c.Forward(ctx, http.MethodGet, "/Videos/abc/stream", url.Values{"static": {"true"}}, header, nil)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() { _ = resp.Body.Close() })

			Expect(got.Get("X-Custom")).To(Equal("v"))
			Expect(got.Get("Range")).To(Equal("bytes=0-100"))
			Expect(got.Get("X-Emby-Token")).To(Equal("real-token"))
		})
	})

	Describe("ProxyStream", func() {
		It("pipes the body and playback headers through", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Header.Get("Range")).To(Equal("bytes=0-3"))
				w.Header().Set("Content-Type", "video/mp4")
				w.Header().Set("Accept-Ranges", "bytes")
				w.Header().Set("X-Powered-By", "leaky")
				w.WriteHeader(http.StatusPartialContent)
				_, _ = w.Write([]byte("chunk"))
			}))
			DeferCleanup(ts.Close)

			inHeader := http.Header{}
			inHeader.Set("Range", "bytes=0-3")

			rec := httptest.NewRecorder()
			c := pool.For(serverFor(ts), "t")
			err := c.ProxyStream(ctx, http.MethodGet, "/Videos/abc/stream", nil, inHeader, rec)
			Expect(err).NotTo(HaveOccurred())

			Expect(rec.Code).To(Equal(http.StatusPartialContent))
			Expect(rec.Body.String()).To(Equal("chunk"))
			Expect(rec.Header().Get("Content-Type")).To(Equal("video/mp4"))
			Expect(rec.Header().Get("Accept-Ranges")).To(Equal("bytes"))
			Expect(rec.Header().Get("X-Powered-By")).To(BeEmpty(), "identity headers must not leak")
		})
	})

	Describe("DirectURL", func() {
		It("injects the real token as api_key", func() {
			c := pool.For(&ent.Server{Name: "A", URL: "http://nas:8096"}, "real-token")
			u := c.DirectURL("/Videos/abc/stream", url.Values{"static": {"true"}})

			parsed, err := url.Parse(u)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Host).To(Equal("nas:8096"))
			Expect(parsed.Path).To(Equal("/Videos/abc/stream"))
			Expect(parsed.Query().Get("api_key")).To(Equal("real-token"))
			Expect(parsed.Query().Get("static")).To(Equal("true"))
		})

		It("builds a bare URL without token or query", func() {
			c := pool.For(&ent.Server{Name: "A", URL: "http://nas:8096"}, "")
			Expect(c.DirectURL("/Items", nil)).To(Equal("http://nas:8096/Items"))
		})
	})
})
