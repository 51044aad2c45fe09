package preprocess

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/accounts"
)

// DeviceFromRequest builds the device fingerprint used for session matching.
// The MediaBrowser header is authoritative; without one the User-Agent
// product token stands in for the client name and the device ID is derived
// from the User-Agent, so repeat logins from the same client hit the same
// session instead of piling up a new one per request.
func DeviceFromRequest(r *http.Request, auth Authorization) accounts.DeviceInfo {
	if auth.DeviceID != "" || auth.Client != "" {
		return accounts.DeviceInfo{
			DeviceID:   auth.DeviceID,
			DeviceName: auth.Device,
			Client:     auth.Client,
			Version:    auth.Version,
		}
	}

	ua := r.Header.Get("User-Agent")
	client, version := parseUserAgent(ua)
	return accounts.DeviceInfo{
		DeviceID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte("jellyswarrm-device:"+ua)).String(),
		DeviceName: "Unknown Device",
		Client:     client,
		Version:    version,
	}
}

// parseUserAgent extracts the leading product/version token, e.g.
// "Jellyfin-Web/10.9.1 (...)" yields ("Jellyfin-Web", "10.9.1").
func parseUserAgent(ua string) (client, version string) {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return "Unknown App", "0.0.0"
	}
	token := ua
	if i := strings.IndexByte(ua, ' '); i >= 0 {
		token = ua[:i]
	}
	if name, ver, ok := strings.Cut(token, "/"); ok && name != "" {
		return name, ver
	}
	return token, "0.0.0"
}
