package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	entuser "github.com/jellyswarrm/jellyswarrm/ent/user"
)

const qcAuthHeader = `MediaBrowser Client="Jellyfin Media Player", Device="Living Room TV", DeviceId="qc-device-1", Version="1.9.1"`

var _ = Describe("Quick Connect", func() {
	var (
		env   *testEnv
		fake1 *fakeJellyfin
		fake2 *fakeJellyfin
		token string
	)

	// initiate starts a handshake as a fresh, unauthenticated device would.
	initiate := func() (secret, code string) {
		req := httptest.NewRequest(http.MethodPost, "/quickconnect/initiate", nil)
		req.Header.Set("X-Emby-Authorization", qcAuthHeader)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		ExpectWithOffset(1, w.Code).To(Equal(http.StatusOK), w.Body.String())

		tree := obj(w)
		return tree["Secret"].(string), tree["Code"].(string)
	}

	BeforeEach(func() {
		fake1 = newFakeJellyfin("one", "password")
		fake2 = newFakeJellyfin("two", "password")

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

	It("reports the feature as enabled", func() {
		w := env.do(http.MethodGet, "/quickconnect/enabled", "", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("true"))
	})

	It("hands a waiting device a secret and a 6-digit code", func() {
		secret, code := initiate()
		Expect(secret).NotTo(BeEmpty())
		Expect(code).To(MatchRegexp(`^\d{6}$`))

		w := env.do(http.MethodGet, "/quickconnect/connect?secret="+secret, "", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		tree := obj(w)
		Expect(tree["Authenticated"]).To(BeFalse())
		Expect(tree["Code"]).To(Equal(code))
		Expect(tree["DeviceName"]).To(Equal("Living Room TV"))
		Expect(tree["AppName"]).To(Equal("Jellyfin Media Player"))
	})

	It("rejects polls for an unknown secret", func() {
		w := env.do(http.MethodGet, "/quickconnect/connect?secret=never-issued", "", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	Describe("Authorization", func() {
		It("lets a logged-in user approve the code", func() {
			secret, code := initiate()

			w := env.do(http.MethodPost, "/quickconnect/authorize?code="+code, token, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			w = env.do(http.MethodGet, "/quickconnect/connect?secret="+secret, "", nil)
			Expect(obj(w)["Authenticated"]).To(BeTrue())
		})

		It("requires a valid user token", func() {
			_, code := initiate()

			w := env.do(http.MethodPost, "/quickconnect/authorize?code="+code, "", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a code nobody initiated", func() {
			w := env.do(http.MethodPost, "/quickconnect/authorize?code=nope", token, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Exchange", func() {
		It("logs the device in with the approving user's stored credentials", func() {
			secret, code := initiate()
			env.do(http.MethodPost, "/quickconnect/authorize?code="+code, token, nil)

			before := fake1.AuthCalls()
			w := env.do(http.MethodPost, "/users/authenticatewithquickconnect", "", map[string]string{
				"Secret": secret,
			})
			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())

			tree := obj(w)
			Expect(tree["AccessToken"]).To(Equal(token),
				"the exchange hands out the user's stable virtual key")
			Expect(tree["ServerId"]).To(Equal(testProxyID))
			Expect(tree["User"].(map[string]any)["Name"]).To(Equal("alice"))

			Expect(fake1.AuthCalls()).To(Equal(before+1),
				"a fresh upstream login per mapped server")

			ctx := context.Background()
			user := db.User.Query().Where(entuser.Username("alice")).OnlyX(ctx)
			Expect(user.QuerySessions().CountX(ctx)).To(BeNumerically(">=", 2))
		})

		It("consumes the secret on first use", func() {
			secret, code := initiate()
			env.do(http.MethodPost, "/quickconnect/authorize?code="+code, token, nil)

			first := env.do(http.MethodPost, "/users/authenticatewithquickconnect", "", map[string]string{"Secret": secret})
			Expect(first.Code).To(Equal(http.StatusOK))

			replay := env.do(http.MethodPost, "/users/authenticatewithquickconnect", "", map[string]string{"Secret": secret})
			Expect(replay.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a handshake that was never approved", func() {
			secret, _ := initiate()

			w := env.do(http.MethodPost, "/users/authenticatewithquickconnect", "", map[string]string{"Secret": secret})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a request without a secret", func() {
			w := env.do(http.MethodPost, "/users/authenticatewithquickconnect", "", map[string]string{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
