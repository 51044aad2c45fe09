package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/ent"
	entapikey "github.com/jellyswarrm/jellyswarrm/ent/apikey"
	"github.com/jellyswarrm/jellyswarrm/seal"
)

// ContextKeyActor is the gin context key holding the admin actor name set by
// AdminGate, used for audit attribution.
const ContextKeyActor = "admin_actor"

// Actor returns the admin identity behind the current request.
func Actor(c *gin.Context) string {
	actor := c.GetString(ContextKeyActor)
	if actor == "" {
		return "admin"
	}
	return actor
}

// AdminGate protects the management REST surface. Three credentials are
// accepted, checked in order:
//
//   - an X-Api-Key header matching a stored API key (by SHA-256)
//   - a Bearer token issued by the admin login endpoint
//   - HTTP basic auth with the configured admin username and password
func AdminGate(db *ent.Client, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-Api-Key"); key != "" {
			name, ok := checkAPIKey(c, db, key)
			if !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Set(ContextKeyActor, "apikey:"+name)
			c.Next()
			return
		}

		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			subject, err := seal.ParseToken(strings.TrimPrefix(auth, "Bearer "), cfg.SessionKey)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Set(ContextKeyActor, subject)
			c.Next()
			return
		}

		if user, pass, ok := c.Request.BasicAuth(); ok {
			if subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUsername))&
				subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.AdminPassword)) == 1 {
				c.Set(ContextKeyActor, user)
				c.Next()
				return
			}
		}

		c.Header("WWW-Authenticate", `Basic realm="jellyswarrm admin"`)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}

// checkAPIKey matches the presented key against the stored hashes and
// refreshes its last-used timestamp. Expired keys are rejected.
func checkAPIKey(c *gin.Context, db *ent.Client, key string) (string, bool) {
	sum := sha256.Sum256([]byte(key))
	row, err := db.APIKey.Query().
		Where(entapikey.KeyHash(hex.EncodeToString(sum[:]))).
		Only(c.Request.Context())
	if err != nil {
		return "", false
	}
	if row.ExpiresAt != nil && row.ExpiresAt.Before(time.Now()) {
		return "", false
	}
	// Best effort; the request proceeds even when the write is lost.
	if err := row.Update().SetLastUsedAt(time.Now()).Exec(c.Request.Context()); err != nil {
		slog.Debug("api key last-used update failed", "error", err)
	}
	return row.Name, true
}
