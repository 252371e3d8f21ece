package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TeodorSim/TransfIT/internal/shared/config"
)

const (
	OAuthStateCookie = "oauth_state"
	OAuthModeCookie  = "oauth_mode"

	// OAuthCookieMaxAge bounds how long a login attempt stays valid.
	OAuthCookieMaxAge = 600
)

// ErrCookieSignature is returned when a cookie value fails signature
// verification or carries a malformed payload.
var ErrCookieSignature = errors.New("cookie signature verification failed")

// SignCookieValue produces "value|signature" where the signature is an
// HMAC-SHA256 over the raw value, base64url encoded.
func SignCookieValue(value, secret string) string {
	return value + "|" + signValue(value, secret)
}

// VerifyCookieValue splits a signed cookie payload and checks its
// signature in constant time. It returns the raw value on success.
func VerifyCookieValue(signed, secret string) (string, error) {
	idx := strings.LastIndex(signed, "|")
	if idx < 0 {
		return "", ErrCookieSignature
	}
	value, sig := signed[:idx], signed[idx+1:]
	expected := signValue(value, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrCookieSignature
	}
	return value, nil
}

func signValue(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SetOAuthCookies stores the signed state nonce and login mode as
// HttpOnly cookies for the duration of the authorization round trip.
func SetOAuthCookies(c *gin.Context, cookieConfig config.CookieConfig, secret, nonce, mode string) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		OAuthStateCookie,
		SignCookieValue(nonce, secret),
		OAuthCookieMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)

	c.SetCookie(
		OAuthModeCookie,
		SignCookieValue(mode, secret),
		OAuthCookieMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetSignedCookie reads a cookie and verifies its signature. Missing,
// expired, or tampered cookies all yield an error so callers can treat
// every failure mode the same way.
func GetSignedCookie(c *gin.Context, name, secret string) (string, error) {
	signed, err := c.Cookie(name)
	if err != nil || signed == "" {
		return "", ErrCookieSignature
	}
	return VerifyCookieValue(signed, secret)
}

// ClearOAuthCookies removes the state and mode cookies once the
// callback has consumed them.
func ClearOAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	for _, name := range []string{OAuthStateCookie, OAuthModeCookie} {
		c.SetCookie(
			name,
			"",
			-1,
			cookieConfig.Path,
			cookieConfig.Domain,
			cookieConfig.Secure,
			true,
		)
	}
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
