package api_test

import (
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gorilla/websocket"
)

var _ = Describe("Session WebSocket", func() {
	var (
		env    *testEnv
		fake1  *fakeJellyfin
		server *httptest.Server
		token  string
	)

	wsTarget := func(path string) string {
		return "ws" + strings.TrimPrefix(server.URL, "http") + path
	}

	BeforeEach(func() {
		fake1 = newFakeJellyfin("one", "password")

		env = newEnv(nil)
		env.addServer("One", fake1.URL(), 200)
		token = env.login("alice", "password")["AccessToken"].(string)

		server = httptest.NewServer(env.router)
	})

	AfterEach(func() {
		server.Close()
		env.stop()
		fake1.Close()
	})

	It("bridges frames both ways with the real session token", func() {
		conn, resp, err := websocket.DefaultDialer.Dial(
			wsTarget("/socket?api_key="+token+"&deviceId=tv-1"), nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()
		defer resp.Body.Close()

		Expect(conn.WriteMessage(websocket.TextMessage, []byte("KeepAlive"))).To(Succeed())
		_, payload, err := conn.ReadMessage()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(payload)).To(Equal("echo:KeepAlive"))

		keys := fake1.SocketKeys()
		Expect(keys).To(ContainElement(fake1.token),
			"the upstream dial carries the real session token")
		Expect(keys).NotTo(ContainElement(token),
			"the virtual key never reaches the upstream")
	})

	It("surfaces a gateway error when the upstream rejects the handshake", func() {
		// The fake only answers /socket, so the forwarded /embywebsocket
		// handshake fails upstream and the proxy answers 502 instead of
		// hanging the client.
		_, resp, err := websocket.DefaultDialer.Dial(
			wsTarget("/embywebsocket?api_key="+token), nil)
		Expect(err).To(HaveOccurred())
		Expect(resp).NotTo(BeNil())
		Expect(resp.StatusCode).To(Equal(502))
	})

	It("falls back to the best server for an unknown token", func() {
		conn, resp, err := websocket.DefaultDialer.Dial(wsTarget("/socket?api_key=bogus"), nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()
		defer resp.Body.Close()

		Expect(fake1.SocketKeys()).To(ContainElement(""),
			"no stored session means no token forwarded")
	})
})
