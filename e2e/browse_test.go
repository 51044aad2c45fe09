//go:build e2e

package e2e

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Browsing", func() {

	Describe("Federated /Items fan-out", func() {
		var movieItems []interface{}

		BeforeEach(func() {
			resp := get(proxyURL("/items?Recursive=true&IncludeItemTypes=Movie"), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			movieItems, _ = pagedItems(resp)
		})

		It("returns items from both upstreams under one envelope", func() {
			Expect(len(movieItems)).To(BeNumerically(">=", 2),
				"both upstreams should contribute at least 1 movie each")
			for _, raw := range movieItems {
				item := raw.(map[string]interface{})
				id := item["Id"].(string)
				_, err := uuid.Parse(id)
				Expect(err).NotTo(HaveOccurred(), "item ID %q should be a virtual UUID", id)
			}
		})

		It("never leaks an upstream ServerId", func() {
			resp := get(proxyURL("/system/info/public"), "")
			proxyID := parseJSONObject(resp)["Id"].(string)

			for _, raw := range movieItems {
				item := raw.(map[string]interface{})
				if sid, ok := item["ServerId"].(string); ok {
					Expect(sid).To(Equal(proxyID))
				}
			}
		})

		It("each item resolves via GET /Items/:id on its origin server", func() {
			Expect(movieItems).NotTo(BeEmpty())
			for _, raw := range movieItems {
				item := raw.(map[string]interface{})
				id := item["Id"].(string)

				resp := get(proxyURL("/items/"+id), userToken)
				Expect(resp.StatusCode).To(Equal(http.StatusOK),
					"failed to resolve item %s", id)
				detail := parseJSONObject(resp)
				Expect(detail["Id"]).To(Equal(id), "resolution must round-trip the virtual ID")
				Expect(detail).To(HaveKey("Name"))
			}
		})

		It("resolves via the user-scoped item path too", func() {
			Expect(movieItems).NotTo(BeEmpty())
			id := movieItems[0].(map[string]interface{})["Id"].(string)

			resp := get(proxyURL(fmt.Sprintf("/users/%s/items/%s", virtualUserID, id)), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			detail := parseJSONObject(resp)
			Expect(detail["Id"]).To(Equal(id))
		})
	})

	Describe("Unknown virtual IDs", func() {
		It("returns 404 for a well-formed ID no mapping knows", func() {
			resp := get(proxyURL("/items/"+uuid.NewString()), userToken)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /Users/:id/Items/Latest", func() {
		It("returns an interleaved bare array", func() {
			resp := get(proxyURL(fmt.Sprintf("/users/%s/items/latest", virtualUserID)), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			items := parseJSONArray(resp)
			Expect(items).NotTo(BeEmpty())
			for _, item := range items {
				_, err := uuid.Parse(item["Id"].(string))
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Describe("GET /Users/:id/Items/Resume", func() {
		It("returns 200 with an Items envelope (may be empty)", func() {
			resp := get(proxyURL(fmt.Sprintf("/users/%s/items/resume", virtualUserID)), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body).To(HaveKey("Items"))
		})
	})

	Describe("GET /Genres", func() {
		It("aggregates genres across upstreams", func() {
			resp := get(proxyURL("/genres"), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body).To(HaveKey("Items"))
		})
	})

	Describe("GET /Persons", func() {
		It("answers the fan-out even when upstreams have no people", func() {
			resp := get(proxyURL("/persons"), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body).To(HaveKey("Items"))
		})
	})
})
