// Package api wires the HTTP surface: routing, middleware, seeding, and the
// background session cleaner.
package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/jellyswarrm/jellyswarrm/api/handler"
	"github.com/jellyswarrm/jellyswarrm/api/middleware"
	"github.com/jellyswarrm/jellyswarrm/config"
)

// corsMiddleware returns a gin-contrib/cors middleware configured with the
// proxy's allowed origins. Credentialed origins from ExternalURL + CORSOrigins
// are accepted with credentials. Unknown origins receive a wildcard
// Allow-Origin without credentials so public resources still work.
func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	allowed := buildAllowedOrigins(cfg.ExternalURL)
	for _, o := range cfg.CORSOrigins {
		allowed[strings.ToLower(o)] = true
	}

	return cors.New(cors.Config{
		AllowOriginWithContextFunc: func(c *gin.Context, origin string) bool {
			if !allowed[strings.ToLower(origin)] {
				// Unknown origin — allow without credentials so public
				// resources (images, streams) still work from web players.
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Writer.Header().Del("Access-Control-Allow-Credentials")
			}
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "X-Emby-Token", "X-Emby-Authorization", "X-MediaBrowser-Token", "User-Agent", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Emby-Token", "X-Emby-Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// NewRouter builds and returns an http.Handler plus a stop function for the
// login rate limiter's background goroutine.
//
// The handler lowercases every request path before Gin's router sees it, so
// all routes registered in lowercase match regardless of client casing.
func NewRouter(deps *handler.Deps) (http.Handler, func()) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestid.New(), middleware.RequestLogger(), corsMiddleware(deps.Cfg))

	loginMW, onFail, onSuccess, stopLimiter := middleware.LoginRateLimiter(deps.Cfg)
	authH := handler.NewAuthHandler(deps, onFail, onSuccess)

	// Jellyfin clients may prefix all routes with /emby or /jellyfin, and the
	// whole proxy may additionally sit behind a configured path prefix.
	bases := []string{"", "/emby", "/jellyfin"}
	if p := strings.TrimRight(deps.Cfg.URLPrefix, "/"); p != "" {
		p = strings.ToLower(p)
		for _, b := range []string{"", "/emby", "/jellyfin"} {
			bases = append(bases, p+b)
		}
	}
	for _, base := range bases {
		registerRoutes(r, base, deps, authH, loginMW)
	}

	// Proxy admin API — not prefixed with /emby or /jellyfin.
	r.POST("/proxy/login", loginMW, deps.AdminLogin)
	admin := r.Group("/proxy")
	admin.Use(middleware.AdminGate(deps.DB, deps.Cfg))
	{
		admin.GET("/servers", deps.AdminListServers)
		admin.POST("/servers", deps.AdminAddServer)
		admin.PATCH("/servers/:id", deps.AdminUpdateServer)
		admin.DELETE("/servers/:id", deps.AdminDeleteServer)
		admin.GET("/servers/health", deps.AdminServerHealth)
		admin.POST("/servers/check", deps.AdminCheckServers)

		admin.GET("/users", deps.AdminListUsers)
		admin.GET("/users/:id", deps.AdminGetUser)
		admin.DELETE("/users/:id", deps.AdminDeleteUser)
		admin.POST("/users/:id/sessions/reset", deps.AdminResetUserSessions)
		admin.DELETE("/mappings/:id", deps.AdminDeleteMapping)

		admin.GET("/libraries", deps.AdminListLibraries)
		admin.POST("/libraries", deps.AdminCreateLibrary)
		admin.PATCH("/libraries/:id", deps.AdminUpdateLibrary)
		admin.DELETE("/libraries/:id", deps.AdminDeleteLibrary)
		admin.POST("/libraries/:id/sources", deps.AdminAddLibrarySource)
		admin.DELETE("/libraries/:id/sources/:sourceId", deps.AdminDeleteLibrarySource)

		admin.GET("/audit", deps.AdminAuditLog)

		admin.GET("/apikeys", deps.AdminListAPIKeys)
		admin.POST("/apikeys", deps.AdminCreateAPIKey)
		admin.DELETE("/apikeys/:id", deps.AdminDeleteAPIKey)
	}

	// Health probes — unauthenticated, for container orchestrators.
	r.GET("/health", deps.HealthLive)
	r.GET("/ready", deps.HealthReady)

	// Everything else is preprocessed, forwarded, and virtualized.
	r.NoRoute(deps.Generic)

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		req.URL.Path = strings.ToLower(req.URL.Path)
		r.ServeHTTP(w, req)
	}), stopLimiter
}

func registerRoutes(r *gin.Engine, base string, deps *handler.Deps, authH *handler.AuthHandler, loginMW gin.HandlerFunc) {
	g := r.Group(base)

	// Auth multiplexing
	g.POST("/users/authenticatebyname", loginMW, authH.AuthenticateByName)
	g.POST("/users/authenticatewithquickconnect", loginMW, authH.AuthenticateWithQuickConnect)
	g.POST("/sessions/logout", authH.Logout)
	g.DELETE("/sessions/logout", authH.Logout)

	// Quick Connect
	g.GET("/quickconnect/enabled", authH.QuickConnectEnabled)
	g.POST("/quickconnect/initiate", authH.QuickConnectInitiate)
	g.GET("/quickconnect/connect", authH.QuickConnectConnect)
	g.POST("/quickconnect/authorize", authH.QuickConnectAuthorize)

	// System + branding
	g.GET("/system/info/public", deps.SystemInfoPublic)
	g.GET("/system/info", deps.SystemInfo)
	g.GET("/system/ping", deps.SystemPing)
	g.POST("/system/ping", deps.SystemPing)
	g.GET("/branding/configuration", deps.BrandingConfiguration)
	g.GET("/branding/css", deps.BrandingCSS)
	g.GET("/branding/css.css", deps.BrandingCSS)

	// Views
	g.GET("/userviews", deps.UserViews)
	g.GET("/users/:userId/views", deps.UserViews)

	// Federated listings
	g.GET("/items", deps.Federated)
	g.GET("/users/:userId/items", deps.Federated)
	g.GET("/users/:userId/items/resume", deps.Federated)
	g.GET("/users/:userId/items/latest", deps.Federated)
	g.GET("/items/latest", deps.Federated)
	g.GET("/items/suggestions", deps.Federated)
	g.GET("/shows/nextup", deps.Federated)
	g.GET("/persons", deps.Federated)
	g.GET("/artists", deps.Federated)
	g.GET("/artists/albumartists", deps.Federated)
	g.GET("/genres", deps.Federated)
	g.GET("/musicgenres", deps.Federated)
	g.GET("/studios", deps.Federated)

	// Playback
	g.GET("/items/:itemId/playbackinfo", deps.PlaybackInfo)
	g.POST("/items/:itemId/playbackinfo", deps.PlaybackInfo)
	g.POST("/livestreams/open", deps.PlaybackInfo)

	// Byte streams. A single wildcard per media kind; the handler splits
	// direct streams from transcoder resources.
	g.GET("/videos/:itemId/*subpath", deps.VideoSubpath)
	g.HEAD("/videos/:itemId/*subpath", deps.VideoSubpath)
	g.GET("/audio/:itemId/*subpath", deps.AudioSubpath)
	g.HEAD("/audio/:itemId/*subpath", deps.AudioSubpath)

	// Play state
	g.POST("/sessions/playing", deps.SessionsPlaying)
	g.POST("/sessions/playing/progress", deps.SessionsPlaying)
	g.POST("/sessions/playing/stopped", deps.SessionsPlaying)
	g.POST("/users/:userId/playeditems/:itemId", deps.PlayedItem)
	g.DELETE("/users/:userId/playeditems/:itemId", deps.PlayedItem)
	g.POST("/users/:userId/favoriteitems/:itemId", deps.PlayedItem)
	g.DELETE("/users/:userId/favoriteitems/:itemId", deps.PlayedItem)

	// Session WebSocket
	g.GET("/socket", deps.Socket)
	g.GET("/embywebsocket", deps.Socket)
	g.GET("/notifications/websocket", deps.Socket)
}

// buildAllowedOrigins returns a set of lower-cased origin strings that are
// allowed to make credentialed cross-origin requests. It derives the origins
// from the configured ExternalURL and also includes its http/https counterpart
// so that both schemes work during development.
func buildAllowedOrigins(externalURL string) map[string]bool {
	origins := make(map[string]bool)
	if externalURL == "" {
		return origins
	}
	parsed, err := url.Parse(externalURL)
	if err != nil {
		origins[strings.ToLower(externalURL)] = true
		return origins
	}
	// Origin = scheme://host (no trailing slash, no path).
	origin := strings.ToLower(parsed.Scheme + "://" + parsed.Host)
	origins[origin] = true
	// Also allow the opposite scheme so http↔https both work.
	switch parsed.Scheme {
	case "https":
		origins["http://"+strings.ToLower(parsed.Host)] = true
	case "http":
		origins["https://"+strings.ToLower(parsed.Host)] = true
	}
	return origins
}
