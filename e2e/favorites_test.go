//go:build e2e

package e2e

import (
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Favorites & Played state", func() {

	// firstMovieID browses the merged library and returns the first virtual
	// item ID.
	firstMovieID := func() string {
		resp := get(proxyURL("/items?ParentId="+mergedMoviesID), userToken)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		items, _ := pagedItems(resp)
		Expect(items).NotTo(BeEmpty(), "need at least 1 movie for favorites tests")
		return items[0].(map[string]interface{})["Id"].(string)
	}

	userData := func(itemID string) map[string]interface{} {
		resp := get(proxyURL(fmt.Sprintf("/users/%s/items/%s", virtualUserID, itemID)), userToken)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		body := parseJSONObject(resp)
		ud, ok := body["UserData"].(map[string]interface{})
		Expect(ok).To(BeTrue(), "expected UserData in item response")
		return ud
	}

	Describe("Mark / Unmark Favorite", Ordered, func() {
		var movieID string

		BeforeAll(func() {
			movieID = firstMovieID()
		})

		It("marks the item as favorite on its origin server", func() {
			resp := post(proxyURL(fmt.Sprintf("/users/%s/favoriteitems/%s", virtualUserID, movieID)),
				nil, userToken)
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body["IsFavorite"]).To(BeTrue())
		})

		It("reflects the favorite in UserData", func() {
			Expect(userData(movieID)["IsFavorite"]).To(BeTrue())
		})

		It("unmarks the favorite", func() {
			resp := del(proxyURL(fmt.Sprintf("/users/%s/favoriteitems/%s", virtualUserID, movieID)),
				userToken)
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body["IsFavorite"]).To(BeFalse())
		})

		It("no longer shows the item as a favorite", func() {
			Expect(userData(movieID)["IsFavorite"]).To(BeFalse())
		})
	})

	Describe("Mark / Unmark Played", Ordered, func() {
		var movieID string

		BeforeAll(func() {
			movieID = firstMovieID()
		})

		It("marks the item as played", func() {
			resp := post(proxyURL(fmt.Sprintf("/users/%s/playeditems/%s", virtualUserID, movieID)),
				nil, userToken)
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body["Played"]).To(BeTrue())
		})

		It("shows the item as played in UserData", func() {
			Expect(userData(movieID)["Played"]).To(BeTrue())
		})

		It("unmarks the played status", func() {
			resp := del(proxyURL(fmt.Sprintf("/users/%s/playeditems/%s", virtualUserID, movieID)),
				userToken)
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body["Played"]).To(BeFalse())
		})

		It("no longer shows the item as played", func() {
			Expect(userData(movieID)["Played"]).To(BeFalse())
		})
	})

	Describe("State persists across sessions", func() {
		It("keeps a favorite visible after re-login", func() {
			movieID := firstMovieID()

			resp := post(proxyURL(fmt.Sprintf("/users/%s/favoriteitems/%s", virtualUserID, movieID)),
				nil, userToken)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			// Virtual IDs are stable, so the same ID works after a fresh
			// fan-out login.
			newToken := login(upstreamUser, upstreamPassword)

			resp2 := get(proxyURL(fmt.Sprintf("/users/%s/items/%s", virtualUserID, movieID)), newToken)
			Expect(resp2.StatusCode).To(Equal(http.StatusOK))
			body := parseJSONObject(resp2)
			ud := body["UserData"].(map[string]interface{})
			Expect(ud["IsFavorite"]).To(BeTrue())

			resp3 := del(proxyURL(fmt.Sprintf("/users/%s/favoriteitems/%s", virtualUserID, movieID)),
				newToken)
			resp3.Body.Close()
		})
	})
})
