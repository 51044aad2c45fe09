package preprocess_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/preprocess"
)

var _ = Describe("ParseMediaBrowser", func() {
	It("parses unquoted pairs", func() {
		a, ok := preprocess.ParseMediaBrowser(`MediaBrowser Client=Jellyfin Web, Device=Firefox, DeviceId=abc-123, Version=10.9.1, Token=tok`)
		Expect(ok).To(BeTrue())
		Expect(a.Client).To(Equal("Jellyfin Web"))
		Expect(a.Device).To(Equal("Firefox"))
		Expect(a.DeviceID).To(Equal("abc-123"))
		Expect(a.Version).To(Equal("10.9.1"))
		Expect(a.Token).To(Equal("tok"))
	})

	It("parses quoted values with escapes", func() {
		a, ok := preprocess.ParseMediaBrowser(`MediaBrowser Client="Jellyfin \"Web\"", Device="Tom, TV", DeviceId="d1", Version="1.0", Token=""`)
		Expect(ok).To(BeTrue())
		Expect(a.Client).To(Equal(`Jellyfin "Web"`))
		Expect(a.Device).To(Equal("Tom, TV"))
		Expect(a.DeviceID).To(Equal("d1"))
		Expect(a.Token).To(BeEmpty())
	})

	It("percent-decodes extracted values", func() {
		a, ok := preprocess.ParseMediaBrowser(`MediaBrowser Client=Jellyfin%20Android, Device=Pixel%208, DeviceId=d1, Version=1.0`)
		Expect(ok).To(BeTrue())
		Expect(a.Client).To(Equal("Jellyfin Android"))
		Expect(a.Device).To(Equal("Pixel 8"))
	})

	It("accepts the Emby scheme and mixed-case keys", func() {
		a, ok := preprocess.ParseMediaBrowser(`Emby client=App, deviceid=d1, device=TV, version=2.0, token=t`)
		Expect(ok).To(BeTrue())
		Expect(a.Client).To(Equal("App"))
		Expect(a.DeviceID).To(Equal("d1"))
		Expect(a.Token).To(Equal("t"))
	})

	It("rejects other schemes", func() {
		_, ok := preprocess.ParseMediaBrowser(`Bearer sometoken`)
		Expect(ok).To(BeFalse())
	})
})

var _ = DescribeTable("ExtractAuth token carriers",
	func(prepare func(r *http.Request), want string) {
		r := httptest.NewRequest(http.MethodGet, "/Items", nil)
		prepare(r)
		Expect(preprocess.ExtractAuth(r).Token).To(Equal(want))
	},
	Entry("Authorization header", func(r *http.Request) {
		r.Header.Set("Authorization", `MediaBrowser Client=A, Device=B, DeviceId=C, Version=1, Token="tok-auth"`)
	}, "tok-auth"),
	Entry("X-Emby-Authorization header", func(r *http.Request) {
		r.Header.Set("X-Emby-Authorization", `MediaBrowser Client=A, Device=B, DeviceId=C, Version=1, Token=tok-emby-auth`)
	}, "tok-emby-auth"),
	Entry("X-MediaBrowser-Token header", func(r *http.Request) {
		r.Header.Set("X-MediaBrowser-Token", "tok-mb")
	}, "tok-mb"),
	Entry("X-Emby-Token header", func(r *http.Request) {
		r.Header.Set("X-Emby-Token", "tok-emby")
	}, "tok-emby"),
	Entry("api_key query", func(r *http.Request) {
		r.URL.RawQuery = "api_key=tok-query"
	}, "tok-query"),
	Entry("ApiKey query", func(r *http.Request) {
		r.URL.RawQuery = "ApiKey=tok-query2"
	}, "tok-query2"),
	Entry("header wins over query", func(r *http.Request) {
		r.Header.Set("X-Emby-Token", "tok-header")
		r.URL.RawQuery = "api_key=tok-query"
	}, "tok-header"),
	Entry("no carrier", func(r *http.Request) {}, ""),
)

var _ = Describe("RemapToken", func() {
	It("rewrites every carrier present", func() {
		h := http.Header{}
		h.Set("Authorization", `MediaBrowser Client=A, Device=B, DeviceId=C, Version=1, Token="virtual"`)
		h.Set("X-Emby-Token", "virtual")
		q := url.Values{"api_key": {"virtual"}}

		preprocess.RemapToken(h, q, "real")

		Expect(h.Get("Authorization")).To(ContainSubstring(`Token="real"`))
		Expect(h.Get("Authorization")).NotTo(ContainSubstring("virtual"))
		Expect(h.Get("X-Emby-Token")).To(Equal("real"))
		Expect(q.Get("api_key")).To(Equal("real"))
	})

	It("appends a token to a header that had none", func() {
		h := http.Header{}
		h.Set("Authorization", `MediaBrowser Client=A, Device=B, DeviceId=C, Version=1`)
		preprocess.RemapToken(h, url.Values{}, "real")
		Expect(h.Get("Authorization")).To(ContainSubstring(`Token="real"`))
	})

	It("keeps escaped quotes and backslashes in rebuilt values", func() {
		h := http.Header{}
		h.Set("Authorization", `MediaBrowser Client="Web", Device="Tom's \"Living Room\" \\ TV", Token="virtual"`)
		preprocess.RemapToken(h, url.Values{}, "real")

		parsed, ok := preprocess.ParseMediaBrowser(h.Get("Authorization"))
		Expect(ok).To(BeTrue())
		Expect(parsed.Device).To(Equal(`Tom's "Living Room" \ TV`))
		Expect(parsed.Token).To(Equal("real"))
	})

	It("leaves absent carriers absent", func() {
		h := http.Header{}
		q := url.Values{}
		preprocess.RemapToken(h, q, "real")
		Expect(h).To(BeEmpty())
		Expect(q).To(BeEmpty())
	})
})

var _ = Describe("DeviceFromRequest", func() {
	It("prefers the parsed authorization header", func() {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		auth := preprocess.Authorization{Client: "Jellyfin Web", Device: "Firefox", DeviceID: "d1", Version: "10.9"}
		d := preprocess.DeviceFromRequest(r, auth)
		Expect(d.DeviceID).To(Equal("d1"))
		Expect(d.Client).To(Equal("Jellyfin Web"))
	})

	It("falls back to the User-Agent product token", func() {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("User-Agent", "Jellyfin-Web/10.9.1 (Mozilla/5.0)")
		d := preprocess.DeviceFromRequest(r, preprocess.Authorization{})
		Expect(d.Client).To(Equal("Jellyfin-Web"))
		Expect(d.Version).To(Equal("10.9.1"))
		Expect(d.DeviceID).NotTo(BeEmpty())
		Expect(d.DeviceName).To(Equal("Unknown Device"))
	})

	It("derives the same device ID for repeat requests from one client", func() {
		r1 := httptest.NewRequest(http.MethodGet, "/", nil)
		r1.Header.Set("User-Agent", "Jellyfin-Web/10.9.1")
		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		r2.Header.Set("User-Agent", "Jellyfin-Web/10.9.1")

		d1 := preprocess.DeviceFromRequest(r1, preprocess.Authorization{})
		d2 := preprocess.DeviceFromRequest(r2, preprocess.Authorization{})
		Expect(d1.DeviceID).To(Equal(d2.DeviceID))

		r3 := httptest.NewRequest(http.MethodGet, "/", nil)
		r3.Header.Set("User-Agent", "Infuse/7.6")
		d3 := preprocess.DeviceFromRequest(r3, preprocess.Authorization{})
		Expect(d3.DeviceID).NotTo(Equal(d1.DeviceID))
	})
})
