package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	entuser "github.com/jellyswarrm/jellyswarrm/ent/user"
)

var _ = Describe("Admin API", func() {
	var (
		env   *testEnv
		fake1 *fakeJellyfin
		fake2 *fakeJellyfin
	)

	// withHeader issues one admin request authenticated by an arbitrary header
	// instead of basic auth.
	withHeader := func(method, target, header, value string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		req.Header.Set(header, value)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		fake1 = newFakeJellyfin("one", "password")
		fake2 = newFakeJellyfin("two", "password")
		env = newEnv(nil)
	})

	AfterEach(func() {
		env.stop()
		fake1.Close()
		fake2.Close()
	})

	Describe("Gate", func() {
		It("rejects requests without credentials", func() {
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/proxy/servers", nil))
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Header().Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
		})

		It("rejects a media user's token", func() {
			env.addServer("One", fake1.URL(), 200)
			token := env.login("alice", "password")["AccessToken"].(string)

			w := env.do(http.MethodGet, "/proxy/servers", token, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a forged bearer token", func() {
			w := withHeader(http.MethodGet, "/proxy/servers", "Authorization", "Bearer not-signed-here")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects an unknown API key", func() {
			w := withHeader(http.MethodGet, "/proxy/servers", "X-Api-Key", hex32())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Admin login", func() {
		It("exchanges the configured credentials for a bearer token", func() {
			w := env.do(http.MethodPost, "/proxy/login", "", map[string]string{
				"username": testAdminUser,
				"password": testAdminPass,
			})
			Expect(w.Code).To(Equal(http.StatusOK))

			tree := obj(w)
			Expect(tree["token"]).NotTo(BeEmpty())
			Expect(tree).To(HaveKey("expires_at"))

			bearer := withHeader(http.MethodGet, "/proxy/servers", "Authorization", "Bearer "+tree["token"].(string))
			Expect(bearer.Code).To(Equal(http.StatusOK))
		})

		It("rejects wrong credentials", func() {
			w := env.do(http.MethodPost, "/proxy/login", "", map[string]string{
				"username": testAdminUser,
				"password": "guess",
			})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects an incomplete body", func() {
			w := env.do(http.MethodPost, "/proxy/login", "", map[string]string{"username": testAdminUser})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Server management", func() {
		It("registers, lists, updates and removes servers", func() {
			w := env.adminDo(http.MethodPost, "/proxy/servers", map[string]any{
				"name": "One", "url": fake1.URL(), "priority": 200,
			})
			Expect(w.Code).To(Equal(http.StatusCreated), w.Body.String())
			created := obj(w)
			id := created["id"].(string)
			Expect(created["name"]).To(Equal("One"))
			Expect(created["priority"]).To(BeNumerically("==", 200))

			w = env.adminDo(http.MethodGet, "/proxy/servers", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			list := arr(w)
			Expect(list).To(HaveLen(1))
			Expect(list[0].(map[string]any)["available"]).To(BeTrue(),
				"a never-checked server counts as available")

			w = env.adminDo(http.MethodPatch, "/proxy/servers/"+id, map[string]any{"priority": 50})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(obj(w)["priority"]).To(BeNumerically("==", 50))

			w = env.adminDo(http.MethodDelete, "/proxy/servers/"+id, nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = env.adminDo(http.MethodGet, "/proxy/servers", nil)
			Expect(arr(w)).To(BeEmpty())
		})

		It("refuses to register the same URL twice", func() {
			w := env.adminDo(http.MethodPost, "/proxy/servers", map[string]any{"name": "One", "url": fake1.URL()})
			Expect(w.Code).To(Equal(http.StatusCreated))

			w = env.adminDo(http.MethodPost, "/proxy/servers", map[string]any{"name": "Clone", "url": fake1.URL()})
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("validates IDs", func() {
			w := env.adminDo(http.MethodPatch, "/proxy/servers/not-a-uuid", map[string]any{"priority": 1})
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			w = env.adminDo(http.MethodPatch, "/proxy/servers/"+uuid.NewString(), map[string]any{"priority": 1})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Health checks", func() {
		It("sweeps on demand and feeds the readiness probe", func() {
			env.addServer("One", fake1.URL(), 200)
			env.addServer("Two", fake2.URL(), 100)

			w := env.adminDo(http.MethodGet, "/proxy/servers/health", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(arr(w)).To(BeEmpty(), "no sweep has run yet")

			w = env.do(http.MethodGet, "/ready", "", nil)
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))

			w = env.adminDo(http.MethodPost, "/proxy/servers/check", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			rows := arr(w)
			Expect(rows).To(HaveLen(2))
			for _, r := range rows {
				row := r.(map[string]any)
				Expect(row["available"]).To(BeTrue())
				Expect(row["version"]).To(Equal("10.10.3"))
			}

			w = env.do(http.MethodGet, "/ready", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(obj(w)["status"]).To(Equal("ready"))
		})

		It("marks a dead server unavailable after the sweep", func() {
			env.addServer("One", fake1.URL(), 200)
			dead := env.addServer("Dead", "http://127.0.0.1:1", 100)

			// Two sweeps: a single failed ping must not flip availability.
			env.adminDo(http.MethodPost, "/proxy/servers/check", nil)
			w := env.adminDo(http.MethodPost, "/proxy/servers/check", nil)

			for _, r := range arr(w) {
				row := r.(map[string]any)
				if row["server_id"] == dead.ID.String() {
					Expect(row["available"]).To(BeFalse())
					Expect(row["last_error"]).NotTo(BeEmpty())
				} else {
					Expect(row["available"]).To(BeTrue())
				}
			}
		})
	})

	Describe("User management", func() {
		var userID string

		BeforeEach(func() {
			env.addServer("One", fake1.URL(), 200)
			env.addServer("Two", fake2.URL(), 100)
			env.login("alice", "password")

			w := env.adminDo(http.MethodGet, "/proxy/users", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			list := arr(w)
			Expect(list).To(HaveLen(1))
			userID = list[0].(map[string]any)["id"].(string)
		})

		It("shows a user's per-server mappings", func() {
			w := env.adminDo(http.MethodGet, "/proxy/users/"+userID, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			tree := obj(w)
			Expect(tree["username"]).To(Equal("alice"))

			mappings := tree["mappings"].([]any)
			Expect(mappings).To(HaveLen(2))
			names := []any{}
			for _, m := range mappings {
				mm := m.(map[string]any)
				Expect(mm["remote_username"]).To(Equal("alice"))
				names = append(names, mm["server_name"])
			}
			Expect(names).To(ConsistOf("One", "Two"))
		})

		It("resets a user's sessions", func() {
			w := env.adminDo(http.MethodPost, "/proxy/users/"+userID+"/sessions/reset", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(obj(w)["deleted"]).To(BeNumerically("==", 2))

			ctx := context.Background()
			user := db.User.Query().Where(entuser.Username("alice")).OnlyX(ctx)
			Expect(user.QuerySessions().CountX(ctx)).To(BeZero())
		})

		It("detaches a single mapping", func() {
			w := env.adminDo(http.MethodGet, "/proxy/users/"+userID, nil)
			mapping := obj(w)["mappings"].([]any)[0].(map[string]any)

			w = env.adminDo(http.MethodDelete, "/proxy/mappings/"+mapping["id"].(string), nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = env.adminDo(http.MethodGet, "/proxy/users/"+userID, nil)
			Expect(obj(w)["mappings"]).To(HaveLen(1))
		})

		It("deletes a user outright", func() {
			w := env.adminDo(http.MethodDelete, "/proxy/users/"+userID, nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = env.adminDo(http.MethodGet, "/proxy/users", nil)
			Expect(arr(w)).To(BeEmpty())
		})

		It("404s an unknown user", func() {
			w := env.adminDo(http.MethodGet, "/proxy/users/"+uuid.NewString(), nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("API keys", func() {
		It("issues the plaintext exactly once and honors the key", func() {
			w := env.adminDo(http.MethodPost, "/proxy/apikeys", map[string]any{"name": "ci"})
			Expect(w.Code).To(Equal(http.StatusCreated))

			created := obj(w)
			key := created["key"].(string)
			Expect(key).To(HaveLen(64))
			Expect(created["key_prefix"]).To(Equal(key[:8]))

			w = env.adminDo(http.MethodGet, "/proxy/apikeys", nil)
			listed := arr(w)[0].(map[string]any)
			Expect(listed).NotTo(HaveKey("key"), "plaintext never appears again")
			Expect(listed["key_prefix"]).To(Equal(key[:8]))

			w = withHeader(http.MethodGet, "/proxy/servers", "X-Api-Key", key)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("attributes audit entries to the key", func() {
			w := env.adminDo(http.MethodPost, "/proxy/apikeys", map[string]any{"name": "provisioner"})
			key := obj(w)["key"].(string)

			req := httptest.NewRequest(http.MethodPost, "/proxy/servers",
				jsonBody(map[string]any{"name": "One", "url": fake1.URL()}))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Api-Key", key)
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			w = env.adminDo(http.MethodGet, "/proxy/audit?limit=10", nil)
			actors := []any{}
			for _, e := range arr(w) {
				actors = append(actors, e.(map[string]any)["actor"])
			}
			Expect(actors).To(ContainElement("apikey:provisioner"))
		})

		It("revokes a key", func() {
			w := env.adminDo(http.MethodPost, "/proxy/apikeys", map[string]any{"name": "temp"})
			created := obj(w)
			key := created["key"].(string)

			w = env.adminDo(http.MethodDelete, "/proxy/apikeys/"+created["id"].(string), nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = withHeader(http.MethodGet, "/proxy/servers", "X-Api-Key", key)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Audit log", func() {
		It("records mutations with the acting admin", func() {
			w := env.adminDo(http.MethodPost, "/proxy/servers", map[string]any{"name": "One", "url": fake1.URL()})
			id := obj(w)["id"].(string)
			env.adminDo(http.MethodDelete, "/proxy/servers/"+id, nil)

			w = env.adminDo(http.MethodGet, "/proxy/audit", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			actions := []any{}
			for _, e := range arr(w) {
				entry := e.(map[string]any)
				Expect(entry["actor"]).To(Equal(testAdminUser))
				Expect(entry["resource_type"]).To(Equal("server"))
				actions = append(actions, entry["action"])
			}
			Expect(actions).To(ContainElements("create", "delete"))
		})

		It("caps and validates the limit", func() {
			env.adminDo(http.MethodPost, "/proxy/servers", map[string]any{"name": "One", "url": fake1.URL()})
			env.adminDo(http.MethodPost, "/proxy/servers", map[string]any{"name": "Two", "url": fake2.URL()})

			w := env.adminDo(http.MethodGet, "/proxy/audit?limit=1", nil)
			Expect(arr(w)).To(HaveLen(1))

			w = env.adminDo(http.MethodGet, "/proxy/audit?limit=0", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
