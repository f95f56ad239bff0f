package auth

import (
	"net/http"
	"time"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

// Interface included for testability
type cookieManager interface {
	setTokenCookies(w http.ResponseWriter, accessToken, refreshToken string, refreshExpiry time.Time)
	readAccessCookie(r *http.Request) (string, bool)
	readRefreshCookie(r *http.Request) (string, bool)
	clearTokenCookies(w http.ResponseWriter)
}

var _ cookieManager = &cookieClient{}

// cookieClient writes the token cookies with attributes chosen for the
// deployment: a shared parent domain so every portal under it sees them, and
// SameSite/Secure relaxed only for local cross-port development.
type cookieClient struct {
	domain  string
	devMode bool
}

func newCookieClient() *cookieClient {
	return &cookieClient{}
}

func (c *cookieClient) setTokenCookies(w http.ResponseWriter, accessToken, refreshToken string, refreshExpiry time.Time) {
	http.SetCookie(w, c.cookie(accessCookieName, accessToken, time.Time{}))
	http.SetCookie(w, c.cookie(refreshCookieName, refreshToken, refreshExpiry))
}

func (c *cookieClient) readAccessCookie(r *http.Request) (string, bool) {
	return c.read(r, accessCookieName)
}

func (c *cookieClient) readRefreshCookie(r *http.Request) (string, bool) {
	return c.read(r, refreshCookieName)
}

// clearTokenCookies expires both cookies. The attributes must match the ones
// used at set-time exactly or the browser will not clear them.
func (c *cookieClient) clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{accessCookieName, refreshCookieName} {
		cookie := c.cookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		http.SetCookie(w, cookie)
	}
}

func (c *cookieClient) read(r *http.Request, name string) (string, bool) {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func (c *cookieClient) cookie(name, value string, expires time.Time) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if c.devMode {
		sameSite = http.SameSiteLaxMode
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.domain,
		Expires:  expires,
		Secure:   !c.devMode,
		HttpOnly: true,
		SameSite: sameSite,
	}
}
