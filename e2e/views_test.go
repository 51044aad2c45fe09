//go:build e2e

package e2e

import (
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Library views", func() {

	fetchViews := func(path string) []interface{} {
		resp := get(proxyURL(path), userToken)
		ExpectWithOffset(1, resp.StatusCode).To(Equal(http.StatusOK))
		body := parseJSONObject(resp)
		items, _ := body["Items"].([]interface{})
		ExpectWithOffset(1, items).NotTo(BeEmpty(), "should have at least one library view")
		return items
	}

	findView := func(items []interface{}, id string) map[string]interface{} {
		for _, raw := range items {
			item := raw.(map[string]interface{})
			if item["Id"].(string) == id {
				return item
			}
		}
		return nil
	}

	Describe("GET /Users/:id/Views", func() {
		It("injects the merged library ahead of upstream views", func() {
			items := fetchViews("/users/" + virtualUserID + "/views")

			merged := findView(items, mergedMoviesID)
			Expect(merged).NotTo(BeNil(), "merged library missing from views")

			// Injected views come first; upstream views follow.
			first := items[0].(map[string]interface{})
			Expect(first["Id"]).To(Equal(mergedMoviesID))
		})

		It("shapes the merged view as a CollectionFolder", func() {
			items := fetchViews("/users/" + virtualUserID + "/views")
			merged := findView(items, mergedMoviesID)
			Expect(merged).NotTo(BeNil())

			Expect(merged["Name"]).To(Equal("All Movies"))
			Expect(merged["Type"]).To(Equal("CollectionFolder"))
			Expect(merged["CollectionType"]).To(Equal("movies"))
			Expect(merged["IsFolder"]).To(BeTrue())
		})

		It("still carries the upstream views, with virtualized IDs", func() {
			items := fetchViews("/users/" + virtualUserID + "/views")

			upstreamViews := 0
			for _, raw := range items {
				item := raw.(map[string]interface{})
				id := item["Id"].(string)
				if id == mergedMoviesID {
					continue
				}
				upstreamViews++
				_, err := uuid.Parse(id)
				Expect(err).NotTo(HaveOccurred(),
					"upstream view ID %q should be a virtual UUID", id)
			}
			Expect(upstreamViews).To(BeNumerically(">=", 2),
				"both upstreams should contribute at least one view")
		})
	})

	Describe("GET /UserViews", func() {
		It("returns the same merged view", func() {
			items := fetchViews("/userviews")
			Expect(findView(items, mergedMoviesID)).NotTo(BeNil())
		})
	})

	Describe("Browsing the merged library", func() {
		It("returns deduplicated items from all sources with virtual IDs", func() {
			resp := get(proxyURL("/items?ParentId="+mergedMoviesID), userToken)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			items, total := pagedItems(resp)
			Expect(total).To(BeNumerically(">=", 1))
			Expect(items).NotTo(BeEmpty())

			for _, raw := range items {
				item := raw.(map[string]interface{})
				id := item["Id"].(string)
				_, err := uuid.Parse(id)
				Expect(err).NotTo(HaveOccurred(),
					"item ID %q should be a virtual UUID", id)
			}
		})
	})
})
