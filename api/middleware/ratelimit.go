package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jellyswarrm/jellyswarrm/config"
)

// ipEntry tracks failed login attempts for a single IP.
type ipEntry struct {
	attempts  int
	windowEnd time.Time // when the current sliding window expires
}

// loginLimiter is an in-memory rate limiter for the login endpoints.
// An IP that fails too often within the window is locked out until the
// window expires.
type loginLimiter struct {
	mu      sync.Mutex
	entries map[string]*ipEntry
	cfg     config.Config
	stop    chan struct{}
}

func newLoginLimiter(cfg config.Config) *loginLimiter {
	l := &loginLimiter{
		entries: make(map[string]*ipEntry),
		cfg:     cfg,
		stop:    make(chan struct{}),
	}
	// Periodically clean up stale entries to prevent unbounded memory growth.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.cleanup()
			case <-l.stop:
				return
			}
		}
	}()
	return l
}

// cleanup removes entries whose window has expired.
func (l *loginLimiter) cleanup() {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
		}
	}
}

// allow reports whether the IP may attempt a login, and when not, how long
// until it may try again.
func (l *loginLimiter) allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[ip]
	if !ok {
		return true, 0
	}
	now := time.Now()
	if now.After(e.windowEnd) {
		delete(l.entries, ip)
		return true, 0
	}
	if e.attempts >= l.cfg.LoginMaxAttempts {
		return false, e.windowEnd.Sub(now)
	}
	return true, 0
}

// recordFailure counts a failed attempt against an IP within the current
// window, starting a fresh window when the previous one has expired.
func (l *loginLimiter) recordFailure(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		l.entries[ip] = &ipEntry{
			attempts:  1,
			windowEnd: now.Add(l.cfg.LoginWindow),
		}
		return
	}
	e.attempts++
}

// recordSuccess resets the failure count for an IP after a successful login.
func (l *loginLimiter) recordSuccess(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, ip)
}

// LoginRateLimiter returns the rate-limiting middleware plus two callbacks so
// the auth handler can signal outcomes: onFailure(ip), onSuccess(ip), and a
// stop function to clean up the background goroutine on shutdown.
func LoginRateLimiter(cfg config.Config) (gin.HandlerFunc, func(string), func(string), func()) {
	limiter := newLoginLimiter(cfg)

	mw := func(c *gin.Context) {
		if cfg.LoginMaxAttempts <= 0 {
			c.Next()
			return
		}
		ip := ClientIP(c)
		if ok, retryIn := limiter.allow(ip); !ok {
			c.Header("Retry-After", strconv.Itoa(int(retryIn.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many failed login attempts. Please try again later.",
			})
			return
		}
		c.Next()
	}

	stop := func() { close(limiter.stop) }

	return mw, limiter.recordFailure, limiter.recordSuccess, stop
}
