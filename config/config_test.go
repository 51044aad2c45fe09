package config_test

import (
	"encoding/base64"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/config"
)

var _ = Describe("Load", func() {
	// Keys managed by these tests — saved and restored around each spec.
	var envKeys = []string{
		"SERVER_ID", "SERVER_NAME", "PUBLIC_ADDRESS", "HOST", "PORT",
		"URL_PREFIX", "EXTERNAL_URL", "INCLUDE_SERVER_NAME_IN_MEDIA",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "MASTER_KEY", "SESSION_KEY",
		"DATABASE_DRIVER", "DATABASE_DSN", "UPSTREAM_TIMEOUT",
		"HEALTH_CHECK_INTERVAL", "MEDIA_STREAMING_MODE",
		"PRECONFIGURED_SERVERS", "SESSION_TTL", "LOGIN_RATE_LIMIT",
		"LOGIN_RATE_WINDOW", "CORS_ORIGINS", "SHUTDOWN_TIMEOUT", "LOG_LEVEL",
	}

	var saved map[string]string

	BeforeEach(func() {
		saved = make(map[string]string, len(envKeys))
		for _, k := range envKeys {
			saved[k] = os.Getenv(k)
			Expect(os.Unsetenv(k)).To(Succeed())
		}
	})

	AfterEach(func() {
		for k, v := range saved {
			if v == "" {
				Expect(os.Unsetenv(k)).To(Succeed())
			} else {
				Expect(os.Setenv(k, v)).To(Succeed())
			}
		}
	})

	It("returns defaults when no env vars are set", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.ServerName).To(Equal("Jellyswarrm Proxy"))
		Expect(cfg.PublicAddress).To(Equal("localhost:3000"))
		Expect(cfg.Host).To(Equal("0.0.0.0"))
		Expect(cfg.Port).To(Equal(3000))
		Expect(cfg.IncludeServerNameInMedia).To(BeTrue())
		Expect(cfg.AdminUsername).To(Equal("admin"))
		Expect(cfg.AdminPassword).To(Equal("jellyswarrm"))
		Expect(cfg.DatabaseDriver).To(Equal("sqlite3"))
		Expect(cfg.UpstreamTimeout).To(Equal(20 * time.Second))
		Expect(cfg.HealthCheckInterval).To(Equal(30 * time.Second))
		Expect(cfg.MediaStreamingMode).To(Equal(config.StreamRedirect))
		Expect(cfg.SessionTTL).To(Equal(30 * 24 * time.Hour))
		Expect(cfg.LoginMaxAttempts).To(Equal(5))
		Expect(cfg.LoginWindow).To(Equal(10 * time.Second))
		Expect(cfg.ShutdownTimeout).To(Equal(15 * time.Second))
		Expect(cfg.LogLevel).To(Equal("info"))
	})

	It("generates a server ID when none is configured", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.ServerID).To(HaveLen(32))
		Expect(cfg.ServerID).NotTo(ContainSubstring("-"))
	})

	It("keeps a configured server ID verbatim", func() {
		Expect(os.Setenv("SERVER_ID", "my-proxy-id")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.ServerID).To(Equal("my-proxy-id"))
	})

	It("generates a session key when none is configured", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.SessionKey).To(HaveLen(64))
	})

	It("decodes a configured base64 session key", func() {
		key := make([]byte, 32)
		for i := range key {
			key[i] = byte(i)
		}
		Expect(os.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString(key))).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.SessionKey).To(Equal(key))
	})

	It("rejects a session key that is not base64", func() {
		Expect(os.Setenv("SESSION_KEY", "not base64!!")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("rejects a session key shorter than 32 bytes", func() {
		Expect(os.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString([]byte("short")))).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("falls back to redirect for an invalid streaming mode", func() {
		Expect(os.Setenv("MEDIA_STREAMING_MODE", "teleport")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.MediaStreamingMode).To(Equal(config.StreamRedirect))
	})

	It("accepts the proxy streaming mode case-insensitively", func() {
		Expect(os.Setenv("MEDIA_STREAMING_MODE", "Proxy")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.MediaStreamingMode).To(Equal(config.StreamProxy))
	})

	It("normalizes the URL prefix", func() {
		Expect(os.Setenv("URL_PREFIX", "/media/")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.URLPrefix).To(Equal("media"))
	})

	It("parses preconfigured servers with and without priorities", func() {
		Expect(os.Setenv("PRECONFIGURED_SERVERS",
			"Main=http://jf1.local:8096=200, Backup=https://jf2.local")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.PreconfiguredServers).To(HaveLen(2))
		Expect(cfg.PreconfiguredServers[0].Name).To(Equal("Main"))
		Expect(cfg.PreconfiguredServers[0].URL).To(Equal("http://jf1.local:8096"))
		Expect(cfg.PreconfiguredServers[0].Priority).To(Equal(200))
		Expect(cfg.PreconfiguredServers[1].Name).To(Equal("Backup"))
		Expect(cfg.PreconfiguredServers[1].URL).To(Equal("https://jf2.local"))
		Expect(cfg.PreconfiguredServers[1].Priority).To(Equal(100))
	})

	It("keeps query strings with = inside preconfigured server URLs", func() {
		Expect(os.Setenv("PRECONFIGURED_SERVERS", "Main=http://jf1.local:8096/?x=y=50")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.PreconfiguredServers).To(HaveLen(1))
		Expect(cfg.PreconfiguredServers[0].URL).To(Equal("http://jf1.local:8096/?x=y"))
		Expect(cfg.PreconfiguredServers[0].Priority).To(Equal(50))
	})

	It("rejects a malformed preconfigured server entry", func() {
		Expect(os.Setenv("PRECONFIGURED_SERVERS", "just-a-name")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("returns an error for an invalid duration", func() {
		Expect(os.Setenv("UPSTREAM_TIMEOUT", "not-a-duration")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("returns an error for an invalid port", func() {
		Expect(os.Setenv("PORT", "not-a-number")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	Describe("BaseURL", func() {
		It("derives the base URL from the public address", func() {
			cfg := config.Config{PublicAddress: "media.example.com:3000"}
			Expect(cfg.BaseURL()).To(Equal("http://media.example.com:3000"))
		})

		It("prefers the external URL and appends the prefix", func() {
			cfg := config.Config{
				PublicAddress: "localhost:3000",
				ExternalURL:   "https://example.com/",
				URLPrefix:     "media",
			}
			Expect(cfg.BaseURL()).To(Equal("https://example.com/media"))
		})
	})

	Describe("ListenAddr", func() {
		It("joins host and port", func() {
			cfg := config.Config{Host: "127.0.0.1", Port: 8097}
			Expect(cfg.ListenAddr()).To(Equal("127.0.0.1:8097"))
		})
	})
})
