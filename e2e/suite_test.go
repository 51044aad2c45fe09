//go:build e2e

// Package e2e contains end-to-end tests that run against a live Docker
// stack (proxy + Postgres + 2 Jellyfin upstreams).
//
// Run with: go test -tags e2e -v -count=1 -timeout 5m ./e2e/...
// Or:       make e2e
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// ── Configurable addresses ────────────────────────────────────────────────────

var (
	// proxyBase is the base URL of the running proxy.
	proxyBase = envOr("E2E_PROXY_URL", "http://localhost:18096")

	// Internal URLs the proxy uses to reach the upstreams; Docker service
	// names, since the proxy runs inside Docker.
	jellyfinServer1 = envOr("E2E_JELLYFIN1_URL", "http://jellyfin-server1:8096")
	jellyfinServer2 = envOr("E2E_JELLYFIN2_URL", "http://jellyfin-server2:8096")

	// Host-reachable URLs for the same upstreams, used to look up real
	// library IDs when wiring merged library sources.
	jellyfin1Public = envOr("E2E_JELLYFIN1_PUBLIC_URL", "http://localhost:18097")
	jellyfin2Public = envOr("E2E_JELLYFIN2_PUBLIC_URL", "http://localhost:18098")

	adminUsername = envOr("E2E_ADMIN_USER", "admin")
	adminPassword = envOr("E2E_ADMIN_PASSWORD", "jellyswarrm")

	// upstreamUser exists with the same credentials on both Jellyfin
	// upstreams, so a single proxy login fans out to both.
	upstreamUser     = envOr("E2E_UPSTREAM_USER", "root")
	upstreamPassword = envOr("E2E_UPSTREAM_PASSWORD", "password")
)

// ── Shared state populated by BeforeSuite ─────────────────────────────────────

var (
	adminToken    string
	userToken     string
	virtualUserID string
	server1ID     string
	server2ID     string

	// mergedMoviesID is the virtual ID ("merged-...") of the merged movies
	// library created during setup.
	mergedMoviesID string
)

func TestE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "E2E Suite")
}

var _ = BeforeSuite(func() {
	By("Waiting for proxy to be healthy")
	waitForHealth(proxyBase+"/health", 120*time.Second)

	By("Logging in to the admin API")
	adminToken = adminLogin(adminUsername, adminPassword)
	Expect(adminToken).NotTo(BeEmpty(), "admin login failed")

	By("Registering upstream server 1")
	server1ID = registerServer("Server 1", jellyfinServer1, 200)

	By("Registering upstream server 2")
	server2ID = registerServer("Server 2", jellyfinServer2, 100)

	By("Waiting for both upstreams to report healthy")
	waitForServers(2, 120*time.Second)

	By("Creating a merged movies library spanning both upstreams")
	mergedMoviesID = createMergedMoviesLibrary()

	By("Logging in as the shared upstream user")
	loginBody := loginFull(upstreamUser, upstreamPassword)
	userToken = loginBody["AccessToken"].(string)
	Expect(userToken).NotTo(BeEmpty(), "user login failed")
	virtualUserID = loginBody["User"].(map[string]interface{})["Id"].(string)
	Expect(virtualUserID).NotTo(BeEmpty())

	By("Setup complete")
})

// ── Bootstrap helpers ─────────────────────────────────────────────────────────

func waitForHealth(url string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 3 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(2 * time.Second)
	}
	Fail(fmt.Sprintf("proxy did not become healthy at %s within %s", url, timeout))
}

// waitForServers polls the admin health endpoint until n servers are
// available; upstream logins fan out only to servers the monitor trusts.
func waitForServers(n int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp := adminGet("/proxy/servers/health")
		statuses := parseJSONArray(resp)
		available := 0
		for _, s := range statuses {
			if ok, _ := s["available"].(bool); ok {
				available++
			}
		}
		if available >= n {
			return
		}
		time.Sleep(2 * time.Second)
	}
	Fail(fmt.Sprintf("fewer than %d upstreams became available within %s", n, timeout))
}

func adminLogin(username, password string) string {
	resp := post(proxyBase+"/proxy/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	defer resp.Body.Close()
	ExpectWithOffset(1, resp.StatusCode).To(Equal(http.StatusOK),
		fmt.Sprintf("admin login failed: status %d", resp.StatusCode))

	var body map[string]interface{}
	Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
	return body["token"].(string)
}

func login(username, password string) string {
	return loginFull(username, password)["AccessToken"].(string)
}

func loginFull(username, password string) map[string]interface{} {
	resp := post(proxyBase+"/users/authenticatebyname", map[string]string{
		"Username": username,
		"Pw":       password,
	}, "")
	defer resp.Body.Close()
	ExpectWithOffset(2, resp.StatusCode).To(Equal(http.StatusOK),
		fmt.Sprintf("login failed for %s: status %d", username, resp.StatusCode))

	var body map[string]interface{}
	Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
	return body
}

func registerServer(name, url string, priority int) string {
	resp := adminPost("/proxy/servers", map[string]interface{}{
		"name":     name,
		"url":      url,
		"priority": priority,
	})
	defer resp.Body.Close()
	ExpectWithOffset(1, resp.StatusCode).To(
		SatisfyAny(Equal(http.StatusCreated), Equal(http.StatusConflict)),
		fmt.Sprintf("register server %s failed: status %d", name, resp.StatusCode))

	if resp.StatusCode == http.StatusConflict {
		// Server already registered — find it.
		list := adminGet("/proxy/servers")
		for _, s := range parseJSONArray(list) {
			if s["name"].(string) == name {
				return s["id"].(string)
			}
		}
		Fail(fmt.Sprintf("server %s not found after conflict", name))
	}

	var body map[string]interface{}
	Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
	return body["id"].(string)
}

// createMergedMoviesLibrary builds an "All Movies" merged library with one
// source per upstream and returns its virtual ID. Idempotent: if the library
// already exists from a previous run, it is reused.
func createMergedMoviesLibrary() string {
	list := adminGet("/proxy/libraries")
	for _, lib := range parseJSONArray(list) {
		if lib["name"].(string) == "All Movies" {
			return lib["virtual_id"].(string)
		}
	}

	resp := adminPost("/proxy/libraries", map[string]interface{}{
		"name":            "All Movies",
		"collection_type": "movies",
		"dedup_strategy":  "provider_ids",
		"is_global":       true,
	})
	ExpectWithOffset(1, resp.StatusCode).To(Equal(http.StatusCreated))
	lib := parseJSONObject(resp)
	libID := lib["id"].(string)
	virtualID := lib["virtual_id"].(string)

	attach := func(serverID, publicBase string, priority int) {
		src := adminPost("/proxy/libraries/"+libID+"/sources", map[string]interface{}{
			"server_id":    serverID,
			"library_id":   upstreamMoviesLibraryID(publicBase),
			"library_name": "Movies",
			"priority":     priority,
		})
		defer src.Body.Close()
		ExpectWithOffset(2, src.StatusCode).To(Equal(http.StatusCreated))
	}
	attach(server1ID, jellyfin1Public, 200)
	attach(server2ID, jellyfin2Public, 100)

	return virtualID
}

// upstreamMoviesLibraryID logs in to an upstream directly and returns the
// real ID of its movies library.
func upstreamMoviesLibraryID(base string) string {
	token, userID := upstreamLogin(base)

	req, err := http.NewRequest(http.MethodGet, base+"/Users/"+userID+"/Views", nil)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("X-Emby-Token", token)
	resp, err := httpClient.Do(req)
	Expect(err).NotTo(HaveOccurred())

	body := parseJSONObject(resp)
	for _, raw := range body["Items"].([]interface{}) {
		item := raw.(map[string]interface{})
		if ct, _ := item["CollectionType"].(string); ct == "movies" {
			return item["Id"].(string)
		}
	}
	Fail(fmt.Sprintf("no movies library found on upstream %s", base))
	return ""
}

// upstreamLogin authenticates against an upstream Jellyfin directly,
// bypassing the proxy.
func upstreamLogin(base string) (token, userID string) {
	payload, err := json.Marshal(map[string]string{
		"Username": upstreamUser,
		"Pw":       upstreamPassword,
	})
	Expect(err).NotTo(HaveOccurred())

	req, err := http.NewRequest(http.MethodPost, base+"/Users/AuthenticateByName", bytes.NewReader(payload))
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Emby-Authorization",
		`MediaBrowser Client="jellyswarrm-e2e", Device="e2e", DeviceId="jellyswarrm-e2e", Version="1.0.0"`)

	resp, err := httpClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	Expect(resp.StatusCode).To(Equal(http.StatusOK),
		fmt.Sprintf("direct upstream login failed at %s", base))

	var body map[string]interface{}
	Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
	return body["AccessToken"].(string), body["User"].(map[string]interface{})["Id"].(string)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
