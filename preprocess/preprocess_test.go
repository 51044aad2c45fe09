package preprocess_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/idmap"
	"github.com/jellyswarrm/jellyswarrm/jsonwalk"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
	"github.com/jellyswarrm/jellyswarrm/upstream"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var _ = Describe("Analyze", func() {
	decode := func(s string) any {
		tree, err := jsonwalk.Decode([]byte(s))
		Expect(err).NotTo(HaveOccurred())
		return tree
	}

	It("extracts embedded user and media source IDs", func() {
		a := preprocess.Analyze(decode(`{"UserId":"u1","MediaSource":{"mediaSourceId":"m1"}}`))
		Expect(a.UserID).To(Equal("u1"))
		Expect(a.MediaSourceID).To(Equal("m1"))
	})

	It("takes root-level item IDs only", func() {
		a := preprocess.Analyze(decode(`{"ItemId":"root","Nested":{"Id":"inner"}}`))
		Expect(a.ItemID).To(Equal("root"))
	})

	It("collects provider IDs with lower-cased keys", func() {
		a := preprocess.Analyze(decode(`{"ProviderIds":{"Tmdb":"123","Imdb":"tt9"}}`))
		Expect(a.ProviderIDs).To(Equal(map[string]string{"tmdb": "123", "imdb": "tt9"}))
	})
})

var _ = Describe("Preprocessor", func() {
	var (
		ctx   context.Context
		pp    *preprocess.Preprocessor
		svc   *accounts.Service
		ids   *idmap.Store
		alice *ent.User
		srvA  *ent.Server
		srvB  *ent.Server
		vidB  string
	)

	device := accounts.DeviceInfo{DeviceID: "tv", DeviceName: "TV", Client: "Jellyfin Web", Version: "10.9"}

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		guard := writeguard.New()
		svc = accounts.New(db, guard, "")
		ids = idmap.New(db, guard)
		DeferCleanup(ids.Stop)

		pp = &preprocess.Preprocessor{
			Accounts: svc,
			IDs:      ids,
			Registry: upstream.NewRegistry(db, guard),
			Config:   config.Config{},
		}

		srvA = db.Server.Create().SetName("Main").SetURL("http://main:8096").SetPriority(200).SaveX(ctx)
		srvB = db.Server.Create().SetName("Backup").SetURL("http://backup:8096").SetPriority(100).SaveX(ctx)

		var err error
		alice, err = svc.GetOrCreateUser(ctx, "alice", "secret")
		Expect(err).NotTo(HaveOccurred())
		mA, err := svc.AddMapping(ctx, alice, "secret", srvA, "alice", "pw")
		Expect(err).NotTo(HaveOccurred())
		mB, err := svc.AddMapping(ctx, alice, "secret", srvB, "alice", "pw")
		Expect(err).NotTo(HaveOccurred())
		_, err = svc.StoreSession(ctx, alice, mA, "real-a", "remote-a", device, 0)
		Expect(err).NotTo(HaveOccurred())
		_, err = svc.StoreSession(ctx, alice, mB, "real-b", "remote-b", device, 0)
		Expect(err).NotTo(HaveOccurred())

		vidB, err = ids.Virtualize(ctx, "0123456789abcdef0123456789abcdef", srvB)
		Expect(err).NotTo(HaveOccurred())
	})

	authedRequest := func(method, target string, body string) *http.Request {
		var r *http.Request
		if body != "" {
			r = httptest.NewRequest(method, target, strings.NewReader(body))
			r.Header.Set("Content-Type", "application/json")
		} else {
			r = httptest.NewRequest(method, target, nil)
		}
		r.Header.Set("Authorization",
			`MediaBrowser Client="Jellyfin Web", Device="TV", DeviceId="tv", Version="10.9", Token="`+alice.VirtualKey+`"`)
		return r
	}

	Describe("server resolution", func() {
		It("routes by a media ID in the path and swaps in the owner's session", func() {
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Items/"+vidB, ""))
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Server.ID).To(Equal(srvB.ID))
			Expect(res.Session).NotTo(BeNil())
			Expect(res.Session.AccessToken).To(Equal("real-b"))
			Expect(res.Out.Path).To(Equal("/Items/0123456789abcdef0123456789abcdef"))
			Expect(res.Out.Header.Get("Authorization")).To(ContainSubstring(`Token="real-b"`))
		})

		It("returns ErrUnknownID for an unmapped media ID in the path", func() {
			_, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Items/ffffffffffffffffffffffffffffffff", ""))
			Expect(errors.Is(err, preprocess.ErrUnknownID)).To(BeTrue())
		})

		It("routes by a media ID in the query", func() {
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Users/"+alice.ID.String()+"/Items?ParentId="+vidB, ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Server.ID).To(Equal(srvB.ID))
			Expect(res.Out.Query.Get("ParentId")).To(Equal("0123456789abcdef0123456789abcdef"))
		})

		It("routes by a body hint", func() {
			body := `{"MediaSourceId":"` + vidB + `"}`
			res, err := pp.Do(ctx, authedRequest(http.MethodPost, "/some/endpoint", body))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Server.ID).To(Equal(srvB.ID))
		})

		It("falls back to the highest-priority session", func() {
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Users/"+alice.ID.String()+"/Views", ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Server.ID).To(Equal(srvA.ID))
			Expect(res.Session.AccessToken).To(Equal("real-a"))
		})

		It("falls back to the best server for unauthenticated requests", func() {
			res, err := pp.Do(ctx, httptest.NewRequest(http.MethodGet, "/System/Info/Public", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.User).To(BeNil())
			Expect(res.Session).To(BeNil())
			Expect(res.Server.ID).To(Equal(srvA.ID))
		})
	})

	Describe("user identification", func() {
		It("binds the user by virtual key", func() {
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Users/Me", ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.User).NotTo(BeNil())
			Expect(res.User.ID).To(Equal(alice.ID))
		})

		It("binds the user by a Users/{id} path segment without a token", func() {
			res, err := pp.Do(ctx, httptest.NewRequest(http.MethodGet, "/Users/"+alice.ID.String()+"/Views", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.User).NotTo(BeNil())
			Expect(res.User.ID).To(Equal(alice.ID))
		})

		It("binds the user by a UserId query key", func() {
			res, err := pp.Do(ctx, httptest.NewRequest(http.MethodGet, "/Items/Latest?UserId="+alice.ID.String(), nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.User).NotTo(BeNil())
		})
	})

	Describe("URL rewriting", func() {
		It("substitutes the virtual user ID with the session's remote ID", func() {
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Users/"+alice.ID.String()+"/Items/"+vidB, ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Out.Path).To(Equal("/Users/remote-b/Items/0123456789abcdef0123456789abcdef"))
		})

		It("substitutes UserId query values", func() {
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Items/"+vidB+"/Similar?UserId="+alice.ID.String(), ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Out.Query.Get("UserId")).To(Equal("remote-b"))
		})

		It("replaces api_key query values with the real token", func() {
			r := httptest.NewRequest(http.MethodGet, "/Items/"+vidB+"?api_key="+alice.VirtualKey, nil)
			res, err := pp.Do(ctx, r)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Out.Query.Get("api_key")).To(Equal("real-b"))
		})

		It("strips the configured URL prefix and compatibility bases", func() {
			pp.Config = config.Config{URLPrefix: "media"}
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/media/emby/Items/"+vidB, ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Path).To(Equal("/Items/" + vidB))
			Expect(res.Out.Path).To(Equal("/Items/0123456789abcdef0123456789abcdef"))
		})
	})

	Describe("header hygiene", func() {
		It("strips hop-by-hop headers", func() {
			r := authedRequest(http.MethodGet, "/Items/"+vidB, "")
			r.Header.Set("Connection", "keep-alive")
			r.Header.Set("Keep-Alive", "timeout=5")
			r.Header.Set("Upgrade", "h2c")
			r.Header.Set("Proxy-Authorization", "Basic x")
			r.Header.Set("X-Custom", "stays")

			res, err := pp.Do(ctx, r)
			Expect(err).NotTo(HaveOccurred())
			for _, h := range []string{"Connection", "Keep-Alive", "Upgrade", "Proxy-Authorization", "Transfer-Encoding"} {
				Expect(res.Out.Header.Get(h)).To(BeEmpty(), h)
			}
			Expect(res.Out.Header.Get("X-Custom")).To(Equal("stays"))
		})
	})

	Describe("body rewriting", func() {
		It("replaces UserId and media IDs and drops stale framing headers", func() {
			body := `{"UserId":"` + alice.ID.String() + `","MediaSourceId":"` + vidB + `","MaxStreamingBitrate":120000000}`
			r := authedRequest(http.MethodPost, "/Items/"+vidB+"/PlaybackInfo", body)
			r.Header.Set("Content-Length", "999")

			res, err := pp.Do(ctx, r)
			Expect(err).NotTo(HaveOccurred())

			Expect(string(res.Out.Body)).To(ContainSubstring(`"remote-b"`))
			Expect(string(res.Out.Body)).To(ContainSubstring("0123456789abcdef0123456789abcdef"))
			Expect(string(res.Out.Body)).NotTo(ContainSubstring(vidB))
			Expect(res.Out.Header.Get("Content-Length")).To(BeEmpty())
			Expect(res.Out.Header.Get("Transfer-Encoding")).To(BeEmpty())
		})

		It("passes non-JSON bodies through untouched", func() {
			r := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("raw bytes"))
			res, err := pp.Do(ctx, r)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(res.Out.Body)).To(Equal("raw bytes"))
		})
	})

	Describe("Rebind", func() {
		It("produces independent rewrites per branch", func() {
			res, err := pp.Do(ctx, authedRequest(http.MethodGet, "/Users/"+alice.ID.String()+"/Views?UserId="+alice.ID.String(), ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Sessions).To(HaveLen(2))

			for _, sess := range res.Sessions {
				srv := sess.Edges.Mapping.Edges.Server
				out, err := pp.Rebind(ctx, res, sess, srv)
				Expect(err).NotTo(HaveOccurred())
				Expect(out.Path).To(Equal("/Users/" + sess.RemoteUserID + "/Views"))
				Expect(out.Query.Get("UserId")).To(Equal(sess.RemoteUserID))
				Expect(out.Header.Get("Authorization")).To(ContainSubstring(sess.AccessToken))
			}
			// The shared virtual-space view is untouched.
			Expect(res.Query.Get("UserId")).To(Equal(alice.ID.String()))
		})
	})
})
