package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCookieClient_setTokenCookies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		devMode      bool
		domain       string
		wantSecure   bool
		wantSameSite http.SameSite
	}{
		{
			name:         "production attributes",
			domain:       "example.com",
			wantSecure:   true,
			wantSameSite: http.SameSiteStrictMode,
		},
		{
			name:         "dev mode relaxes transport",
			devMode:      true,
			wantSecure:   false,
			wantSameSite: http.SameSiteLaxMode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &cookieClient{domain: tt.domain, devMode: tt.devMode}

			rr := httptest.NewRecorder()
			expiry := time.Now().Add(time.Hour)
			c.setTokenCookies(rr, "access-1", "refresh-1", expiry)

			cookies := rr.Result().Cookies()
			if len(cookies) != 2 {
				t.Fatalf("setTokenCookies() wrote %d cookies, want 2", len(cookies))
			}

			byName := map[string]*http.Cookie{}
			for _, ck := range cookies {
				byName[ck.Name] = ck
			}

			access, ok := byName[accessCookieName]
			if !ok {
				t.Fatal("setTokenCookies() did not write the access cookie")
			}
			if access.Value != "access-1" {
				t.Errorf("access cookie value = %q, want access-1", access.Value)
			}
			refresh, ok := byName[refreshCookieName]
			if !ok {
				t.Fatal("setTokenCookies() did not write the refresh cookie")
			}
			if refresh.Value != "refresh-1" {
				t.Errorf("refresh cookie value = %q, want refresh-1", refresh.Value)
			}

			for _, ck := range cookies {
				if !ck.HttpOnly {
					t.Errorf("cookie %s HttpOnly = false, want true", ck.Name)
				}
				if ck.Secure != tt.wantSecure {
					t.Errorf("cookie %s Secure = %t, want %t", ck.Name, ck.Secure, tt.wantSecure)
				}
				if ck.SameSite != tt.wantSameSite {
					t.Errorf("cookie %s SameSite = %d, want %d", ck.Name, ck.SameSite, tt.wantSameSite)
				}
				if ck.Domain != tt.domain {
					t.Errorf("cookie %s Domain = %q, want %q", ck.Name, ck.Domain, tt.domain)
				}
				if ck.Path != "/" {
					t.Errorf("cookie %s Path = %q, want /", ck.Name, ck.Path)
				}
			}
		})
	}
}

func TestCookieClient_clearTokenCookies(t *testing.T) {
	t.Parallel()

	c := &cookieClient{domain: "example.com"}

	rr := httptest.NewRecorder()
	c.clearTokenCookies(rr)

	cookies := rr.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("clearTokenCookies() wrote %d cookies, want 2", len(cookies))
	}
	for _, ck := range cookies {
		if ck.MaxAge != -1 {
			t.Errorf("cookie %s MaxAge = %d, want -1", ck.Name, ck.MaxAge)
		}
		if ck.Value != "" {
			t.Errorf("cookie %s value = %q, want empty", ck.Name, ck.Value)
		}
		// Clearing only works when these match the set-time attributes.
		if ck.Domain != "example.com" || ck.Path != "/" {
			t.Errorf("cookie %s attributes = (%q, %q), want (example.com, /)", ck.Name, ck.Domain, ck.Path)
		}
	}
}

func TestCookieClient_read(t *testing.T) {
	t.Parallel()

	c := newCookieClient()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: accessCookieName, Value: "access-1"})

	if got, ok := c.readAccessCookie(r); !ok || got != "access-1" {
		t.Errorf("readAccessCookie() = (%q, %t), want (access-1, true)", got, ok)
	}
	if _, ok := c.readRefreshCookie(r); ok {
		t.Error("readRefreshCookie() found a cookie that was never set")
	}
}
