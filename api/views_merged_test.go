package api_test

import (
	"context"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"
)

var _ = Describe("Merged libraries", func() {
	var (
		env   *testEnv
		fake1 *fakeJellyfin
		fake2 *fakeJellyfin
		token string
		vuid  string

		srv1ID string
		srv2ID string

		libID     string
		virtualID string
	)

	realA1 := hex32()
	realA2 := hex32()
	realB1 := hex32()
	realB2 := hex32()

	lib1 := hex32()
	lib2 := hex32()

	// createLibrary drives the admin API end to end: one merged library with
	// a source on each server.
	createLibrary := func(name, dedup string, sources bool) (string, string) {
		w := env.adminDo(http.MethodPost, "/proxy/libraries", map[string]any{
			"name":            name,
			"collection_type": "movies",
			"dedup_strategy":  dedup,
			"is_global":       true,
		})
		ExpectWithOffset(1, w.Code).To(Equal(http.StatusCreated), w.Body.String())
		created := obj(w)
		id := created["id"].(string)
		vid := created["virtual_id"].(string)

		if sources {
			for _, src := range []struct {
				srv      string
				lib      string
				priority int
			}{
				{srv1ID, lib1, 200},
				{srv2ID, lib2, 100},
			} {
				w := env.adminDo(http.MethodPost, "/proxy/libraries/"+id+"/sources", map[string]any{
					"server_id":    src.srv,
					"library_id":   src.lib,
					"library_name": "Movies",
					"priority":     src.priority,
				})
				ExpectWithOffset(1, w.Code).To(Equal(http.StatusCreated), w.Body.String())
			}
		}
		return id, vid
	}

	BeforeEach(func() {
		fake1 = newFakeJellyfin("one", "password")
		fake1.views = []map[string]any{view(hex32(), "Movies", "movies")}
		fake1.itemsByParent[lib1] = []map[string]any{
			movie(realA1, "Dune", "tt0001"),
			movie(realA2, "Blade Runner", "tt0002"),
		}

		fake2 = newFakeJellyfin("two", "password")
		fake2.views = []map[string]any{view(hex32(), "Filme", "movies")}
		fake2.itemsByParent[lib2] = []map[string]any{
			movie(realB1, "Dune (Kopie)", "tt0001"),
			movie(realB2, "Solaris", "tt0003"),
		}

		env = newEnv(nil)
		srv1ID = env.addServer("One", fake1.URL(), 200).ID.String()
		srv2ID = env.addServer("Two", fake2.URL(), 100).ID.String()

		tree := env.login("alice", "password")
		token = tree["AccessToken"].(string)
		vuid = tree["User"].(map[string]any)["Id"].(string)

		libID, virtualID = createLibrary("All Movies", "provider_ids", true)
	})

	AfterEach(func() {
		env.stop()
		fake1.Close()
		fake2.Close()
	})

	Describe("Views injection", func() {
		It("prepends the merged library to the federated views", func() {
			w := env.do(http.MethodGet, "/users/"+vuid+"/views", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			list := items(w)
			Expect(list).To(HaveLen(3), "1 merged + 1 view per server")

			merged := list[0]
			Expect(merged["Id"]).To(Equal(virtualID))
			Expect(merged["Name"]).To(Equal("All Movies"))
			Expect(merged["Type"]).To(Equal("CollectionFolder"))
			Expect(merged["CollectionType"]).To(Equal("movies"))
			Expect(merged["IsFolder"]).To(BeTrue())
			Expect(merged["ServerId"]).To(Equal(testProxyID))

			for _, v := range list[1:] {
				id := v["Id"].(string)
				_, err := uuid.Parse(id)
				Expect(err).NotTo(HaveOccurred(), "upstream view ID %q should be virtualized", id)
				Expect(v["ServerId"]).To(Equal(testProxyID))
			}
		})

		It("serves the same union on /userviews", func() {
			w := env.do(http.MethodGet, "/userviews", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			list := items(w)
			Expect(list).To(HaveLen(3))
			Expect(list[0]["Id"]).To(Equal(virtualID))
		})

		It("answers an empty page instead of failing when every upstream is down", func() {
			w := env.adminDo(http.MethodDelete, "/proxy/libraries/"+libID, nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			fake1.Close()
			fake2.Close()

			w = env.do(http.MethodGet, "/users/"+vuid+"/views", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(items(w)).To(BeEmpty())
			Expect(obj(w)["TotalRecordCount"]).To(BeNumerically("==", 0))
		})

		It("uses a stable merged- prefixed virtual ID", func() {
			Expect(strings.HasPrefix(virtualID, "merged-")).To(BeTrue())

			w := env.do(http.MethodGet, "/users/"+vuid+"/views", token, nil)
			Expect(items(w)[0]["Id"]).To(Equal(virtualID))
		})
	})

	Describe("Browsing a merged library", func() {
		It("folds duplicates by provider ID, highest-priority source first", func() {
			w := env.do(http.MethodGet, "/items?ParentId="+virtualID+"&Recursive=true", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			list := items(w)
			Expect(itemNames(list)).To(Equal([]string{"Dune", "Blade Runner", "Solaris"}),
				"both tt0001 copies fold into the priority-200 one")
			Expect(obj(w)["TotalRecordCount"]).To(BeNumerically("==", 3))

			// The surviving Dune is the copy from the higher-priority server.
			r, err := env.ids.Resolve(context.Background(), list[0]["Id"].(string))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.OriginalID).To(Equal(realA1))
		})

		It("virtualizes every item in the merged listing", func() {
			w := env.do(http.MethodGet, "/items?ParentId="+virtualID, token, nil)

			for _, it := range items(w) {
				id := it["Id"].(string)
				Expect(id).NotTo(BeElementOf(realA1, realA2, realB1, realB2))
				_, err := uuid.Parse(id)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("keeps every copy under the none strategy", func() {
			w := env.adminDo(http.MethodPatch, "/proxy/libraries/"+libID, map[string]any{
				"dedup_strategy": "none",
			})
			Expect(w.Code).To(Equal(http.StatusOK))

			w = env.do(http.MethodGet, "/items?ParentId="+virtualID, token, nil)
			Expect(items(w)).To(HaveLen(4))
		})

		It("folds by normalized title and year under name_year", func() {
			fake2.itemsByParent[lib2] = []map[string]any{
				movie(realB1, "DUNE", ""),
				movie(realB2, "Solaris", "tt0003"),
			}
			w := env.adminDo(http.MethodPatch, "/proxy/libraries/"+libID, map[string]any{
				"dedup_strategy": "name_year",
			})
			Expect(w.Code).To(Equal(http.StatusOK))

			w = env.do(http.MethodGet, "/items?ParentId="+virtualID, token, nil)
			Expect(itemNames(items(w))).To(Equal([]string{"Dune", "Blade Runner", "Solaris"}))
		})

		It("answers an empty listing for a library without sources", func() {
			_, emptyVID := createLibrary("Empty", "provider_ids", false)

			w := env.do(http.MethodGet, "/items?ParentId="+emptyVID, token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(items(w)).To(BeEmpty())
			Expect(obj(w)["TotalRecordCount"]).To(BeNumerically("==", 0))
		})

		It("skips sources whose server is down", func() {
			fake2.Close()

			w := env.do(http.MethodGet, "/items?ParentId="+virtualID, token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(itemNames(items(w))).To(Equal([]string{"Dune", "Blade Runner"}))
		})
	})
})
