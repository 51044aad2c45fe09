package api_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/config"
	entuser "github.com/jellyswarrm/jellyswarrm/ent/user"
)

var _ = Describe("Login fan-out", func() {
	var (
		env   *testEnv
		fake1 *fakeJellyfin
		fake2 *fakeJellyfin
	)

	BeforeEach(func() {
		fake1 = newFakeJellyfin("one", "password")
		fake2 = newFakeJellyfin("two", "password")

		env = newEnv(nil)
		env.addServer("One", fake1.URL(), 200)
		env.addServer("Two", fake2.URL(), 100)
	})

	AfterEach(func() {
		env.stop()
		fake1.Close()
		fake2.Close()
	})

	It("multiplexes one login across every registered server", func() {
		env.login("alice", "password")

		Expect(fake1.AuthCalls()).To(Equal(1))
		Expect(fake2.AuthCalls()).To(Equal(1))

		ctx := context.Background()
		user := db.User.Query().Where(entuser.Username("alice")).OnlyX(ctx)
		Expect(user.QueryMappings().CountX(ctx)).To(Equal(2))
		Expect(user.QuerySessions().CountX(ctx)).To(Equal(2))
	})

	It("answers with the virtual key and the proxy's identity", func() {
		tree := env.login("alice", "password")

		ctx := context.Background()
		user := db.User.Query().Where(entuser.Username("alice")).OnlyX(ctx)

		Expect(tree["AccessToken"]).To(Equal(user.VirtualKey))
		Expect(tree["ServerId"]).To(Equal(testProxyID))

		u := tree["User"].(map[string]any)
		Expect(u["Name"]).To(Equal("alice"))
		Expect(u["ServerId"]).To(Equal(testProxyID))
		Expect(u["Id"]).NotTo(Equal(fake1.userID), "upstream user ID must not leak")

		policy := u["Policy"].(map[string]any)
		Expect(policy["IsAdministrator"]).To(BeFalse())
		Expect(policy["SyncPlayAccess"]).To(Equal("None"))

		si := tree["SessionInfo"].(map[string]any)
		Expect(si["UserId"]).To(Equal(u["Id"]))
		Expect(si["ServerId"]).To(Equal(testProxyID))
	})

	It("succeeds when only a subset of servers accepts the credentials", func() {
		strict := newFakeJellyfin("three", "different-password")
		defer strict.Close()
		env.addServer("Three", strict.URL(), 50)

		env.login("bob", "password")

		ctx := context.Background()
		user := db.User.Query().Where(entuser.Username("bob")).OnlyX(ctx)
		Expect(user.QuerySessions().CountX(ctx)).To(Equal(2),
			"only the servers that accepted the password get sessions")
	})

	It("rejects credentials no server accepts", func() {
		w := env.do(http.MethodPost, "/users/authenticatebyname", "", map[string]string{
			"Username": "alice",
			"Pw":       "wrong",
		})
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a login without a username", func() {
		w := env.do(http.MethodPost, "/users/authenticatebyname", "", map[string]string{
			"Pw": "password",
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 502 when no servers are registered", func() {
		empty := newEnv(nil)
		defer empty.stop()

		w := empty.do(http.MethodPost, "/users/authenticatebyname", "", map[string]string{
			"Username": "alice",
			"Pw":       "password",
		})
		Expect(w.Code).To(Equal(http.StatusBadGateway))
	})

	It("reuses stored credentials on re-login", func() {
		env.login("alice", "password")
		tree1 := env.login("alice", "password")
		tree2 := env.login("alice", "password")

		// One virtual user, stable virtual key across logins.
		Expect(tree2["AccessToken"]).To(Equal(tree1["AccessToken"]))

		ctx := context.Background()
		Expect(db.User.Query().Where(entuser.Username("alice")).CountX(ctx)).To(Equal(1))
	})

	Describe("Logout", func() {
		It("drops every stored session for the user", func() {
			tree := env.login("alice", "password")
			token := tree["AccessToken"].(string)

			w := env.do(http.MethodPost, "/sessions/logout", token, nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			ctx := context.Background()
			user := db.User.Query().Where(entuser.Username("alice")).OnlyX(ctx)
			Expect(user.QuerySessions().CountX(ctx)).To(BeZero())
		})

		It("is a no-op for an unknown token", func() {
			w := env.do(http.MethodPost, "/sessions/logout", "not-a-token", nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})

	Describe("Rate limiting", func() {
		It("locks out an IP after repeated failures", func() {
			limited := newEnv(func(c *config.Config) { c.LoginMaxAttempts = 2 })
			defer limited.stop()
			limited.addServer("One", fake1.URL(), 200)

			bad := map[string]string{"Username": "alice", "Pw": "wrong"}
			for i := 0; i < 2; i++ {
				w := limited.do(http.MethodPost, "/users/authenticatebyname", "", bad)
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			}
			w := limited.do(http.MethodPost, "/users/authenticatebyname", "", bad)
			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
		})
	})
})
