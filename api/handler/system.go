package handler

import (
	"net/http"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/jellyswarrm/jellyswarrm/static"
)

// emulatedVersion is the Jellyfin server version the proxy reports. Clients
// gate features on it, so it tracks the oldest release the fleet runs.
const emulatedVersion = "10.10.3"

// SystemInfoPublic handles GET /System/Info/Public. The response is
// synthesized entirely from configuration; no upstream is consulted, so the
// endpoint works even with every server down.
func (d *Deps) SystemInfoPublic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"Id":                     d.Cfg.ServerID,
		"ServerName":             d.Cfg.ServerName,
		"LocalAddress":           d.Cfg.PublicAddress,
		"Version":                emulatedVersion,
		"ProductName":            "Jellyfin Server",
		"OperatingSystem":        runtime.GOOS,
		"StartupWizardCompleted": true,
	})
}

// SystemInfo handles GET /System/Info: the resolved upstream's full info with
// the proxy's identity substituted, so clients never learn the real server.
func (d *Deps) SystemInfo(c *gin.Context) {
	res := d.preprocessOrAbort(c)
	if res == nil {
		return
	}
	if res.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token := ""
	if res.Session != nil {
		token = res.Session.AccessToken
	}
	body, status, err := d.Pool.For(res.Server, token).
		ProxyJSON(c.Request.Context(), res.Method, res.Out.Path, res.Out.Query, res.Out.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream unavailable"})
		return
	}
	if status < 200 || status >= 300 {
		c.Data(status, "application/json", body)
		return
	}

	var info map[string]any
	if err := json.Unmarshal(body, &info); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unparseable upstream response"})
		return
	}
	info["Id"] = d.Cfg.ServerID
	info["ServerName"] = d.Cfg.ServerName
	info["LocalAddress"] = d.Cfg.PublicAddress
	c.JSON(http.StatusOK, info)
}

// SystemPing handles GET and POST /System/Ping.
func (d *Deps) SystemPing(c *gin.Context) {
	c.JSON(http.StatusOK, "Jellyfin Server")
}

// BrandingConfiguration handles GET /Branding/Configuration. The login
// disclaimer lists the federated servers so users can tell what sits behind
// the proxy.
func (d *Deps) BrandingConfiguration(c *gin.Context) {
	var b strings.Builder
	b.WriteString("Jellyswarrm proxying to the following servers: ")

	servers, err := d.Registry.List(c.Request.Context())
	if err != nil || len(servers) == 0 {
		b.WriteString("No servers configured.")
	} else {
		for i, s := range servers {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(`<a href="` + s.URL + `" target="_blank" rel="noopener noreferrer">` + s.Name + `</a>`)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"LoginDisclaimer":     b.String(),
		"CustomCss":           static.BrandingCSS,
		"SplashscreenEnabled": false,
	})
}

// HealthLive handles GET /health: liveness for orchestrators.
func (d *Deps) HealthLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HealthReady handles GET /ready: ready once at least one upstream answers
// health checks.
func (d *Deps) HealthReady(c *gin.Context) {
	for _, s := range d.Pool.Monitor().Statuses() {
		if s.Available {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no upstream available"})
}

// BrandingCSS handles GET /Branding/Css and /Branding/Css.css.
func (d *Deps) BrandingCSS(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(static.BrandingCSS))
}
