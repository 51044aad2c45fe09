package api_test

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
)

var _ = Describe("Playback routing", func() {
	var (
		env   *testEnv
		fake1 *fakeJellyfin
		token string
		vuid  string
		srv1  *ent.Server

		movieID string
	)

	realA1 := hex32()

	BeforeEach(func() {
		fake1 = newFakeJellyfin("one", "password")
		fake1.items = []map[string]any{movie(realA1, "Dune", "tt0001")}

		env = newEnv(nil)
		srv1 = env.addServer("One", fake1.URL(), 200)

		tree := env.login("alice", "password")
		token = tree["AccessToken"].(string)
		vuid = tree["User"].(map[string]any)["Id"].(string)

		list := items(env.do(http.MethodGet, "/items", token, nil))
		Expect(list).To(HaveLen(1))
		movieID = list[0]["Id"].(string)
	})

	AfterEach(func() {
		env.stop()
		fake1.Close()
	})

	Describe("PlaybackInfo", func() {
		It("virtualizes media source IDs but leaves transcoder URLs alone", func() {
			w := env.do(http.MethodPost, "/items/"+movieID+"/playbackinfo", token, map[string]any{
				"DeviceProfile": map[string]any{},
			})
			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())

			tree := obj(w)
			sources := tree["MediaSources"].([]any)
			Expect(sources).To(HaveLen(1))

			src := sources[0].(map[string]any)
			Expect(src["Id"]).To(Equal(movieID),
				"the media source carries the item's virtual ID")

			tu := src["TranscodingUrl"].(string)
			Expect(tu).To(ContainSubstring(fake1.streamID),
				"transcoder URLs keep the upstream's own stream ID")
			Expect(tu).To(ContainSubstring("api_key=" + fake1.token))

			Expect(tree["PlaySessionId"]).To(Equal(fake1.streamID),
				"play session IDs are upstream-owned and never rewritten")
		})

		It("answers GET the same as POST", func() {
			w := env.do(http.MethodGet, "/items/"+movieID+"/playbackinfo", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(obj(w)["MediaSources"]).To(HaveLen(1))
		})

		It("pins the transcoder stream to the item's server", func() {
			env.do(http.MethodPost, "/items/"+movieID+"/playbackinfo", token, nil)

			serverID, ok := env.plays.Lookup(fake1.streamID)
			Expect(ok).To(BeTrue())
			Expect(serverID).To(Equal(srv1.ID))
		})
	})

	Describe("Transcoder byte streams", func() {
		It("redirects segment requests to the tracked server", func() {
			env.do(http.MethodPost, "/items/"+movieID+"/playbackinfo", token, nil)

			w := env.do(http.MethodGet, "/videos/"+fake1.streamID+"/hls1/main/0.ts", token, nil)
			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))

			loc := w.Header().Get("Location")
			Expect(strings.HasPrefix(loc, fake1.URL())).To(BeTrue(), loc)
			Expect(loc).To(ContainSubstring(fake1.streamID))
		})

		It("rejects a stream nobody opened", func() {
			w := env.do(http.MethodGet, "/videos/"+hex32()+"/hls1/main/0.ts", token, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Direct streams", func() {
		It("redirects with the real item ID and the real session token", func() {
			w := env.do(http.MethodGet, "/videos/"+movieID+"/stream?static=true", token, nil)
			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))

			loc := w.Header().Get("Location")
			Expect(strings.HasPrefix(loc, fake1.URL())).To(BeTrue(), loc)
			Expect(loc).To(ContainSubstring(realA1))
			Expect(loc).NotTo(ContainSubstring(movieID))
			Expect(loc).To(ContainSubstring("api_key=" + fake1.token))
			Expect(loc).To(ContainSubstring("static=true"))
		})

		It("returns 404 for an unmapped virtual ID", func() {
			w := env.do(http.MethodGet, "/videos/"+uuid.NewString()+"/stream", token, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("pipes the bytes through in proxy mode", func() {
			piped := newEnv(func(c *config.Config) { c.MediaStreamingMode = config.StreamProxy })
			defer piped.stop()
			piped.addServer("One", fake1.URL(), 200)

			tok := piped.login("bob", "password")["AccessToken"].(string)
			list := items(piped.do(http.MethodGet, "/items", tok, nil))
			Expect(list).To(HaveLen(1))

			w := piped.do(http.MethodGet, "/videos/"+list[0]["Id"].(string)+"/stream?static=true", tok, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("mkv-bytes-" + realA1))
			Expect(w.Header().Get("Content-Type")).To(Equal("video/x-matroska"))
		})
	})

	Describe("Play state reports", func() {
		It("relays favorite flips to the origin server", func() {
			w := env.do(http.MethodPost, "/users/"+vuid+"/favoriteitems/"+movieID, token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(obj(w)["IsFavorite"]).To(BeTrue())
		})
	})
})
