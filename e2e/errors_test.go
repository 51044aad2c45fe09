//go:build e2e

package e2e

import (
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error handling & edge cases", func() {

	Describe("Invalid tokens", func() {
		It("returns 401 on authenticated endpoints", func() {
			endpoints := []string{
				"/system/info",
				"/users/" + virtualUserID + "/views",
			}

			for _, ep := range endpoints {
				resp := get(proxyURL(ep), "bogus-token-xyz")
				resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized),
					"expected 401 for %s with bogus token", ep)
			}
		})
	})

	Describe("Invalid item IDs", func() {
		It("returns 404 for a virtual ID no mapping knows", func() {
			resp := get(proxyURL("/items/"+uuid.NewString()), userToken)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns 404 for an unknown stream ID", func() {
			resp := get(proxyURL("/videos/"+uuid.NewString()+"/stream"), userToken)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Public endpoints work without auth", func() {
		It("GET /System/Info/Public returns the proxy's identity", func() {
			resp := get(proxyURL("/system/info/public"), "")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body := parseJSONObject(resp)
			Expect(body["Id"]).NotTo(BeEmpty())
			Expect(body["ProductName"]).To(Equal("Jellyfin Server"))
			Expect(body).To(HaveKey("Version"))
		})

		It("GET /Branding/Configuration returns branding with custom CSS", func() {
			resp := get(proxyURL("/branding/configuration"), "")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body := parseJSONObject(resp)
			Expect(body).To(HaveKey("CustomCss"))
			Expect(body["CustomCss"]).NotTo(BeEmpty())
		})

		It("GET /QuickConnect/Enabled returns true", func() {
			resp := get(proxyURL("/quickconnect/enabled"), "")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("GET /health returns ok", func() {
			resp := get(proxyURL("/health"), "")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body := parseJSONObject(resp)
			Expect(body["status"]).To(Equal("ok"))
		})

		It("GET /ready returns ready once an upstream is available", func() {
			resp := get(proxyURL("/ready"), "")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body := parseJSONObject(resp)
			Expect(body["status"]).To(Equal("ready"))
		})
	})

	Describe("Path prefix aliases", func() {
		It("serves the same public info under /emby and /jellyfin", func() {
			for _, prefix := range []string{"/emby", "/jellyfin"} {
				resp := get(proxyURL(prefix+"/system/info/public"), "")
				Expect(resp.StatusCode).To(Equal(http.StatusOK),
					"expected 200 under %s", prefix)
				body := parseJSONObject(resp)
				Expect(body["Id"]).NotTo(BeEmpty())
			}
		})
	})

	Describe("Admin API authentication", func() {
		It("rejects requests with no credentials", func() {
			req := get(proxyURL("/proxy/servers"), "")
			req.Body.Close()
			Expect(req.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a Jellyfin user token", func() {
			// X-Emby-Token carries media credentials, not admin ones.
			resp := get(proxyURL("/proxy/servers"), userToken)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("accepts the admin bearer token", func() {
			resp := adminGet("/proxy/servers")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			servers := parseJSONArray(resp)
			Expect(len(servers)).To(BeNumerically(">=", 2))
		})

		It("records admin actions in the audit log", func() {
			resp := adminGet("/proxy/audit?limit=50")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			entries := parseJSONArray(resp)
			Expect(entries).NotTo(BeEmpty(),
				"server registration during setup should have left audit entries")
		})
	})

	Describe("Unknown endpoints", func() {
		It("passes unrouted paths through and surfaces the upstream 404", func() {
			resp := get(proxyURL("/totally/unknown/endpoint"), userToken)
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})
