//go:build e2e

package e2e

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authentication", func() {

	Describe("Login fan-out", func() {
		It("returns a synthesized response for valid credentials", func() {
			body := loginFull(upstreamUser, upstreamPassword)

			Expect(body).To(HaveKey("AccessToken"))
			Expect(body["AccessToken"]).NotTo(BeEmpty())

			user := body["User"].(map[string]interface{})
			Expect(user["Name"]).To(Equal(upstreamUser))

			policy := user["Policy"].(map[string]interface{})
			Expect(policy["IsAdministrator"]).To(BeFalse(),
				"admin rights must be revoked even when the upstream user is an admin")
			Expect(policy["SyncPlayAccess"]).To(Equal("None"))
		})

		It("reports the proxy's identity, never an upstream's", func() {
			body := loginFull(upstreamUser, upstreamPassword)

			serverID := body["ServerId"].(string)
			user := body["User"].(map[string]interface{})
			Expect(user["ServerId"]).To(Equal(serverID))

			resp := get(proxyURL("/system/info/public"), "")
			info := parseJSONObject(resp)
			Expect(info["Id"]).To(Equal(serverID))
		})

		It("creates mappings on both upstreams for a shared user", func() {
			loginFull(upstreamUser, upstreamPassword)

			users := parseJSONArray(adminGet("/proxy/users"))
			var proxyUserID string
			for _, u := range users {
				if u["username"].(string) == upstreamUser {
					proxyUserID = u["id"].(string)
				}
			}
			Expect(proxyUserID).NotTo(BeEmpty())

			detail := parseJSONObject(adminGet("/proxy/users/" + proxyUserID))
			mappings := detail["mappings"].([]interface{})
			servers := map[string]bool{}
			for _, raw := range mappings {
				m := raw.(map[string]interface{})
				servers[m["server_id"].(string)] = true
			}
			Expect(servers).To(HaveKey(server1ID))
			Expect(servers).To(HaveKey(server2ID))
		})

		It("returns 401 for a wrong password", func() {
			resp := post(proxyURL("/users/authenticatebyname"), map[string]string{
				"Username": upstreamUser,
				"Pw":       "wrong-password",
			}, "")
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("returns 401 for a user no upstream knows", func() {
			resp := post(proxyURL("/users/authenticatebyname"), map[string]string{
				"Username": "ghost",
				"Pw":       "password",
			}, "")
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Authenticated requests", func() {
		It("succeeds with a valid token", func() {
			resp := get(proxyURL("/system/info"), userToken)
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("returns 401 without a token", func() {
			resp := get(proxyURL("/system/info"), "")
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("returns 401 with an invalid token", func() {
			resp := get(proxyURL("/system/info"), "invalid-token-123")
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Logout", func() {
		It("drops the stored upstream sessions", func() {
			token := login(upstreamUser, upstreamPassword)

			resp := get(proxyURL("/system/info"), token)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			logoutResp := post(proxyURL("/sessions/logout"), nil, token)
			logoutResp.Body.Close()
			Expect(logoutResp.StatusCode).To(SatisfyAny(
				Equal(http.StatusOK),
				Equal(http.StatusNoContent),
			))

			// No upstream sessions remain, so proxied calls fail until a
			// fresh login fans out again.
			resp2 := get(proxyURL("/system/info"), token)
			resp2.Body.Close()
			Expect(resp2.StatusCode).To(Equal(http.StatusUnauthorized))

			userToken = login(upstreamUser, upstreamPassword)
			Expect(userToken).NotTo(BeEmpty())
		})
	})
})
