package api_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/config"
	entuser "github.com/jellyswarrm/jellyswarrm/ent/user"
)

var _ = Describe("Federated browsing", func() {
	var (
		env   *testEnv
		fake1 *fakeJellyfin
		fake2 *fakeJellyfin
		token string
	)

	realA1 := hex32()
	realA2 := hex32()
	realA3 := hex32()
	realB1 := hex32()

	BeforeEach(func() {
		fake1 = newFakeJellyfin("one", "password")
		fake1.items = []map[string]any{
			movie(realA1, "Alpha", "tt0001"),
			movie(realA2, "Beta", "tt0002"),
			movie(realA3, "Gamma", "tt0003"),
		}
		fake1.latest = []map[string]any{movie(realA1, "Alpha", "tt0001")}

		fake2 = newFakeJellyfin("two", "password")
		fake2.items = []map[string]any{
			movie(realB1, "Delta", "tt0004"),
		}
		fake2.latest = []map[string]any{movie(realB1, "Delta", "tt0004")}

		env = newEnv(nil)
		env.addServer("One", fake1.URL(), 200)
		env.addServer("Two", fake2.URL(), 100)

		token = env.login("alice", "password")["AccessToken"].(string)
	})

	AfterEach(func() {
		env.stop()
		fake1.Close()
		fake2.Close()
	})

	Describe("GET /items", func() {
		It("interleaves both catalogs round-robin, priority first", func() {
			w := env.do(http.MethodGet, "/items?Recursive=true", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			list := items(w)
			Expect(itemNames(list)).To(Equal([]string{"Alpha", "Delta", "Beta", "Gamma"}))

			tree := obj(w)
			Expect(tree["TotalRecordCount"]).To(BeNumerically("==", 4))
			Expect(tree["StartIndex"]).To(BeNumerically("==", 0))
		})

		It("replaces every upstream ID with a stable virtual one", func() {
			first := items(env.do(http.MethodGet, "/items", token, nil))
			second := items(env.do(http.MethodGet, "/items", token, nil))

			for i, it := range first {
				id := it["Id"].(string)
				Expect(id).NotTo(BeElementOf(realA1, realA2, realA3, realB1))
				_, err := uuid.Parse(id)
				Expect(err).NotTo(HaveOccurred(), "virtual ID %q should be UUID-shaped", id)
				Expect(second[i]["Id"]).To(Equal(id), "virtual IDs must be stable")
			}
		})

		It("requires authentication", func() {
			w := env.do(http.MethodGet, "/items", "", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("keeps serving when one upstream goes away", func() {
			fake2.Close()

			w := env.do(http.MethodGet, "/items", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(itemNames(items(w))).To(Equal([]string{"Alpha", "Beta", "Gamma"}))
		})
	})

	Describe("ID-pinned requests", func() {
		It("routes a virtual item ID to its origin server and round-trips it", func() {
			list := items(env.do(http.MethodGet, "/items", token, nil))

			var deltaID string
			for _, it := range list {
				if it["Name"] == "Delta" {
					deltaID = it["Id"].(string)
				}
			}
			Expect(deltaID).NotTo(BeEmpty())

			w := env.do(http.MethodGet, "/items/"+deltaID, token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			detail := obj(w)
			Expect(detail["Id"]).To(Equal(deltaID))
			Expect(detail["Name"]).To(Equal("Delta"))

			r, err := env.ids.Resolve(context.Background(), deltaID)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.OriginalID).To(Equal(realB1))
		})

		It("returns 404 for a virtual ID with no mapping", func() {
			w := env.do(http.MethodGet, "/items/"+uuid.NewString(), token, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /users/:id/items/latest", func() {
		It("keeps the bare-array shape and interleaves", func() {
			vuid := env.login("alice", "password")["User"].(map[string]any)["Id"].(string)

			w := env.do(http.MethodGet, "/users/"+vuid+"/items/latest", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			list := arr(w)
			Expect(list).To(HaveLen(2))
			names := []string{}
			for _, it := range list {
				names = append(names, it.(map[string]any)["Name"].(string))
			}
			Expect(names).To(Equal([]string{"Alpha", "Delta"}))
		})

		It("does not duplicate items when the user re-logs in from a bare client", func() {
			ctx := context.Background()
			vuid := env.login("alice", "password")["User"].(map[string]any)["Id"].(string)

			user := db.User.Query().Where(entuser.Username("alice")).OnlyX(ctx)
			Expect(user.QuerySessions().CountX(ctx)).To(Equal(2),
				"a header-less re-login must reuse the stored sessions, not stack new ones")

			w := env.do(http.MethodGet, "/users/"+vuid+"/items/latest", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(arr(w)).To(HaveLen(2))
		})

		It("queries each server once when several sessions share a device", func() {
			ctx := context.Background()
			vuid := env.login("alice", "password")["User"].(map[string]any)["Id"].(string)

			user := db.User.Query().Where(entuser.Username("alice")).OnlyX(ctx)
			for _, sess := range user.QuerySessions().WithMapping().AllX(ctx) {
				db.AuthSession.Create().
					SetUser(user).
					SetMappingID(sess.Edges.Mapping.ID).
					SetAccessToken(sess.AccessToken).
					SetRemoteUserID(sess.RemoteUserID).
					SetDeviceID(sess.DeviceID).
					SetDeviceName("Second Screen").
					SetClient(sess.Client).
					SetClientVersion(sess.ClientVersion).
					ExecX(ctx)
			}
			Expect(user.QuerySessions().CountX(ctx)).To(Equal(4))

			w := env.do(http.MethodGet, "/users/"+vuid+"/items/latest", token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			list := arr(w)
			names := []string{}
			for _, it := range list {
				names = append(names, it.(map[string]any)["Name"].(string))
			}
			Expect(names).To(Equal([]string{"Alpha", "Delta"}))
		})
	})

	Describe("Server name decoration", func() {
		It("suffixes item names with the origin server when enabled", func() {
			decorated := newEnv(func(c *config.Config) { c.IncludeServerNameInMedia = true })
			defer decorated.stop()
			decorated.addServer("One", fake1.URL(), 200)

			tok := decorated.login("carol", "password")["AccessToken"].(string)
			w := decorated.do(http.MethodGet, "/items", tok, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(itemNames(items(w))).To(ContainElement("Alpha [One]"))
		})
	})

	Describe("Played and favorite state relay", func() {
		It("forwards the flip to the item's origin server", func() {
			vuid := env.login("alice", "password")["User"].(map[string]any)["Id"].(string)
			list := items(env.do(http.MethodGet, "/items", token, nil))
			alphaID := ""
			for _, it := range list {
				if it["Name"] == "Alpha" {
					alphaID = it["Id"].(string)
				}
			}

			w := env.do(http.MethodPost, "/users/"+vuid+"/favoriteitems/"+alphaID, token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(obj(w)["IsFavorite"]).To(BeTrue())

			w = env.do(http.MethodDelete, "/users/"+vuid+"/favoriteitems/"+alphaID, token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(obj(w)["IsFavorite"]).To(BeFalse())
		})
	})
})
