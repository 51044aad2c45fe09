package middleware_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/jellyswarrm/jellyswarrm/api/middleware"
	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/seal"
)

var _ = Describe("AdminGate", func() {
	var (
		cfg    config.Config
		router *gin.Engine
	)

	BeforeEach(func() {
		_, err := db.APIKey.Delete().Exec(context.Background())
		Expect(err).NotTo(HaveOccurred())

		cfg = config.Config{
			AdminUsername: "admin",
			AdminPassword: "secret",
			SessionKey:    []byte("0123456789abcdef0123456789abcdef"),
		}

		gin.SetMode(gin.TestMode)
		router = gin.New()
		router.GET("/proxy/ping", middleware.AdminGate(db, cfg), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"actor": middleware.Actor(c)})
		})
	})

	do := func(mutate func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/proxy/ping", nil)
		if mutate != nil {
			mutate(req)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("rejects requests with no credentials", func() {
		w := do(nil)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
	})

	It("accepts the configured basic credentials", func() {
		w := do(func(r *http.Request) { r.SetBasicAuth("admin", "secret") })
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"actor":"admin"`))
	})

	It("rejects wrong basic credentials", func() {
		w := do(func(r *http.Request) { r.SetBasicAuth("admin", "nope") })
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("accepts a bearer token signed with the session key", func() {
		token := seal.SignToken("admin", time.Hour, cfg.SessionKey)

		w := do(func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("rejects a forged bearer token", func() {
		token := seal.SignToken("admin", time.Hour, []byte("another-key-another-key-another!"))

		w := do(func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	Describe("API keys", func() {
		const plaintext = "00deadbeefcafe1234567890abcdef0000000000000000000000000000000000"

		createKey := func(expires *time.Time) {
			sum := sha256.Sum256([]byte(plaintext))
			create := db.APIKey.Create().
				SetName("ci").
				SetKeyHash(hex.EncodeToString(sum[:])).
				SetKeyPrefix(plaintext[:8]).
				SetCreatedBy("admin")
			if expires != nil {
				create.SetExpiresAt(*expires)
			}
			Expect(create.Exec(context.Background())).To(Succeed())
		}

		It("accepts a stored key and reports its actor", func() {
			createKey(nil)
			w := do(func(r *http.Request) { r.Header.Set("X-Api-Key", plaintext) })
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("apikey:ci"))
		})

		It("rejects an unknown key", func() {
			w := do(func(r *http.Request) { r.Header.Set("X-Api-Key", "not-a-key") })
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects an expired key", func() {
			past := time.Now().Add(-time.Hour)
			createKey(&past)
			w := do(func(r *http.Request) { r.Header.Set("X-Api-Key", plaintext) })
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("refreshes the last-used timestamp", func() {
			createKey(nil)
			do(func(r *http.Request) { r.Header.Set("X-Api-Key", plaintext) })

			row, err := db.APIKey.Query().Only(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(row.LastUsedAt).NotTo(BeNil())
		})
	})
})
