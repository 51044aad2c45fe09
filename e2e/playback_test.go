//go:build e2e

package e2e

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Playback", func() {

	firstMovieID := func() string {
		resp := get(proxyURL("/items?ParentId="+mergedMoviesID), userToken)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		items, _ := pagedItems(resp)
		Expect(items).NotTo(BeEmpty(), "need at least 1 movie for playback tests")
		return items[0].(map[string]interface{})["Id"].(string)
	}

	Describe("GET /Items/:id/PlaybackInfo", func() {
		It("returns MediaSources with virtualized IDs", func() {
			movieID := firstMovieID()

			resp := get(proxyURL(fmt.Sprintf("/items/%s/playbackinfo", movieID)), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body).To(HaveKey("MediaSources"))

			sources := body["MediaSources"].([]interface{})
			Expect(sources).NotTo(BeEmpty(), "expected at least one media source")

			source := sources[0].(map[string]interface{})
			_, err := uuid.Parse(source["Id"].(string))
			Expect(err).NotTo(HaveOccurred(),
				"media source ID should be a virtual UUID, got %q", source["Id"])
		})
	})

	Describe("POST /Items/:id/PlaybackInfo", func() {
		It("rewrites transcoding URLs against the virtual item", func() {
			movieID := firstMovieID()

			resp := post(proxyURL(fmt.Sprintf("/items/%s/playbackinfo", movieID)),
				map[string]interface{}{
					"DeviceProfile": map[string]interface{}{},
				}, userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			sources := body["MediaSources"].([]interface{})
			Expect(sources).NotTo(BeEmpty())

			source := sources[0].(map[string]interface{})

			// TranscodingUrl only exists when the upstream decides to
			// transcode; when present it must point back at the proxy's
			// virtual item, not the upstream's real one.
			if tu, ok := source["TranscodingUrl"].(string); ok && tu != "" {
				Expect(tu).To(ContainSubstring(movieID),
					"TranscodingUrl should reference the virtual item ID")
			}
		})
	})

	Describe("GET /Videos/:id/stream", func() {
		It("serves the stream directly or redirects to the origin server", func() {
			movieID := firstMovieID()

			resp := get(proxyURL(fmt.Sprintf("/videos/%s/stream?static=true", movieID)), userToken)
			defer resp.Body.Close()

			// Proxy mode pipes the bytes; redirect mode answers 307 with the
			// upstream URL carrying the real session token.
			Expect(resp.StatusCode).To(SatisfyAny(
				Equal(http.StatusOK),
				Equal(http.StatusTemporaryRedirect),
			))

			if resp.StatusCode == http.StatusTemporaryRedirect {
				loc := resp.Header.Get("Location")
				Expect(loc).NotTo(BeEmpty())
				Expect(loc).NotTo(ContainSubstring(movieID),
					"redirect must use the upstream's real item ID")
			}
		})

		It("returns 404 for an unknown item", func() {
			resp := get(proxyURL(fmt.Sprintf("/videos/%s/stream?static=true", uuid.NewString())), userToken)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /Items/:id/Images/Primary", func() {
		It("proxies the image from the origin server", func() {
			movieID := firstMovieID()

			resp := get(proxyURL(fmt.Sprintf("/items/%s/images/primary", movieID)), "")
			defer resp.Body.Close()

			// Images depend on the upstream's metadata scan; 404 is fine.
			Expect(resp.StatusCode).To(SatisfyAny(
				Equal(http.StatusOK),
				Equal(http.StatusNotFound),
			))

			if resp.StatusCode == http.StatusOK {
				Expect(resp.Header.Get("Content-Type")).To(ContainSubstring("image/"))
			}
		})
	})
})
