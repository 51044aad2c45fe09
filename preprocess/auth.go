// Package preprocess rewrites incoming client requests into upstream-ready
// ones: it identifies the user behind the five Jellyfin auth carriers, picks
// the owning server and session, and substitutes virtual IDs and tokens with
// their real upstream counterparts in the URL, headers and body.
package preprocess

import (
	"net/http"
	"net/url"
	"strings"
)

// Authorization is the client identity carried by a MediaBrowser-style
// authorization header, plus the bearer token from any of the recognized
// carriers.
type Authorization struct {
	Client   string
	Device   string
	DeviceID string
	Version  string
	Token    string
}

// HasToken reports whether any carrier supplied a bearer token.
func (a Authorization) HasToken() bool { return a.Token != "" }

// ParseMediaBrowser parses the `MediaBrowser Key=Value, Key="Value"` header
// grammar. Values may be quoted (with backslash escapes) or bare (terminated
// at the next comma); both forms are percent-decoded after extraction.
// Unrecognized keys are ignored. Returns false when the scheme prefix is
// missing.
func ParseMediaBrowser(header string) (Authorization, bool) {
	rest, ok := cutScheme(header)
	if !ok {
		return Authorization{}, false
	}

	var a Authorization
	for len(rest) > 0 {
		rest = strings.TrimLeft(rest, " \t,")
		if rest == "" {
			break
		}
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			break
		}
		key := strings.TrimSpace(rest[:eq])
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			value, rest = scanQuoted(rest[1:])
		} else if i := strings.IndexByte(rest, ','); i >= 0 {
			value, rest = strings.TrimSpace(rest[:i]), rest[i+1:]
		} else {
			value, rest = strings.TrimSpace(rest), ""
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}

		switch strings.ToLower(key) {
		case "client":
			a.Client = value
		case "device":
			a.Device = value
		case "deviceid":
			a.DeviceID = value
		case "version":
			a.Version = value
		case "token":
			a.Token = value
		}
	}
	return a, true
}

func cutScheme(header string) (string, bool) {
	trimmed := strings.TrimSpace(header)
	for _, scheme := range []string{"MediaBrowser ", "Emby "} {
		if len(trimmed) >= len(scheme) && strings.EqualFold(trimmed[:len(scheme)], scheme) {
			return trimmed[len(scheme):], true
		}
	}
	return "", false
}

// scanQuoted consumes a quoted value body (opening quote already eaten),
// honoring backslash escapes, and returns the value plus the remainder after
// the closing quote.
func scanQuoted(s string) (string, string) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case '"':
			return b.String(), s[i+1:]
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), ""
}

// ExtractAuth gathers the client's authorization from all five recognized
// carriers: the Authorization and X-Emby-Authorization headers (MediaBrowser
// grammar), the X-MediaBrowser-Token and X-Emby-Token headers, and the
// api_key/ApiKey query parameter. Device identity comes from whichever
// MediaBrowser header is present; the token from the first carrier that has
// one, in the order above.
func ExtractAuth(r *http.Request) Authorization {
	var a Authorization
	for _, h := range []string{"Authorization", "X-Emby-Authorization"} {
		if v := r.Header.Get(h); v != "" {
			if parsed, ok := ParseMediaBrowser(v); ok {
				if a.Client == "" {
					a.Client = parsed.Client
					a.Device = parsed.Device
					a.DeviceID = parsed.DeviceID
					a.Version = parsed.Version
				}
				if a.Token == "" {
					a.Token = parsed.Token
				}
			}
		}
	}
	if a.Token == "" {
		a.Token = r.Header.Get("X-MediaBrowser-Token")
	}
	if a.Token == "" {
		a.Token = r.Header.Get("X-Emby-Token")
	}
	if a.Token == "" {
		q := r.URL.Query()
		if v := q.Get("api_key"); v != "" {
			a.Token = v
		} else if v := q.Get("ApiKey"); v != "" {
			a.Token = v
		}
	}
	return a
}

// RemapToken substitutes the real upstream token for the virtual one in
// every auth carrier present on the outbound header set and query.
func RemapToken(header http.Header, query url.Values, realToken string) {
	for _, h := range []string{"Authorization", "X-Emby-Authorization"} {
		if v := header.Get(h); v != "" {
			header.Set(h, replaceHeaderToken(v, realToken))
		}
	}
	for _, h := range []string{"X-MediaBrowser-Token", "X-Emby-Token"} {
		if header.Get(h) != "" {
			header.Set(h, realToken)
		}
	}
	for _, k := range []string{"api_key", "ApiKey"} {
		if query.Get(k) != "" {
			query.Set(k, realToken)
		}
	}
}

// replaceHeaderToken rewrites the Token pair inside a MediaBrowser header,
// appending one when the header has none.
func replaceHeaderToken(header, realToken string) string {
	rest, ok := cutScheme(header)
	if !ok {
		return header
	}

	var parts []string
	replaced := false
	for len(rest) > 0 {
		rest = strings.TrimLeft(rest, " \t,")
		if rest == "" {
			break
		}
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			break
		}
		key := strings.TrimSpace(rest[:eq])
		rest = rest[eq+1:]

		var raw string
		if strings.HasPrefix(rest, `"`) {
			var value string
			value, rest = scanQuoted(rest[1:])
			raw = quoteValue(value)
		} else if i := strings.IndexByte(rest, ','); i >= 0 {
			raw, rest = strings.TrimSpace(rest[:i]), rest[i+1:]
		} else {
			raw, rest = strings.TrimSpace(rest), ""
		}

		if strings.EqualFold(key, "token") {
			parts = append(parts, `Token="`+realToken+`"`)
			replaced = true
			continue
		}
		parts = append(parts, key+"="+raw)
	}
	if !replaced {
		parts = append(parts, `Token="`+realToken+`"`)
	}
	return "MediaBrowser " + strings.Join(parts, ", ")
}

// quoteValue re-quotes a scanned value, escaping backslashes and quotes so
// the rebuilt header parses back to the same value.
func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}
