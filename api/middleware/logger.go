// Package middleware holds the gin middleware shared by the client-facing
// and admin route groups: request logging, login rate limiting and the admin
// gate.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// RequestLogger writes one slog line per request with timing. The request ID
// comes from the requestid middleware, which must run earlier in the chain.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		slog.Info("request",
			"request_id", requestid.Get(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"ip", c.ClientIP(),
		)
	}
}

// ClientIP extracts the client IP using Gin's built-in ClientIP method,
// which honours the engine's trusted-proxy configuration and safely handles
// X-Forwarded-For chains. Falls back to RemoteAddr when no proxy is trusted.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}
