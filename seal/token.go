package seal

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrBadToken is returned for tokens that are malformed or whose
	// signature does not verify.
	ErrBadToken = errors.New("seal: invalid token")
	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("seal: token expired")
)

// SignToken issues a signed bearer token binding subject until now+ttl.
// Format: base64url(subject:expiryUnix) + "." + base64url(HMAC-SHA256).
// Used for admin sessions on the management API; the signing key comes from
// the SESSION_KEY configuration.
func SignToken(subject string, ttl time.Duration, key []byte) string {
	payload := fmt.Sprintf("%s:%d", subject, time.Now().Add(ttl).Unix())
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) +
		"." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// ParseToken verifies a token produced by SignToken and returns its subject.
func ParseToken(token string, key []byte) (string, error) {
	payloadB64, sigB64, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrBadToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(payloadB64)
	if err != nil {
		return "", ErrBadToken
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigB64)
	if err != nil {
		return "", ErrBadToken
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return "", ErrBadToken
	}
	i := strings.LastIndexByte(string(payload), ':')
	if i < 0 {
		return "", ErrBadToken
	}
	subject := string(payload[:i])
	exp, err := strconv.ParseInt(string(payload[i+1:]), 10, 64)
	if err != nil {
		return "", ErrBadToken
	}
	if time.Now().Unix() > exp {
		return "", ErrTokenExpired
	}
	return subject, nil
}
