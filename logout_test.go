package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/audit"
	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/Malcan-Technologies/shoraka-sub003/storage"
	"github.com/go-playground/errors/v5"
	gomock "go.uber.org/mock/gomock"
)

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		prepare      func(t *testing.T, m *authMocks)
		wantStatus   int
		wantLocation string
	}{
		{
			name:   "unidentified caller still gets cookies cleared",
			target: "/auth/logout",
			prepare: func(_ *testing.T, m *authMocks) {
				m.cookies.EXPECT().readAccessCookie(gomock.Any()).Return("", false).Times(1)
				m.cookies.EXPECT().readRefreshCookie(gomock.Any()).Return("", false).Times(1)
				m.cookies.EXPECT().clearTokenCookies(gomock.Any()).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://invest.example.com",
		},
		{
			name:   "identified caller revokes everything and exits via the provider",
			target: "/auth/logout",
			prepare: func(t *testing.T, m *authMocks) {
				m.cookies.EXPECT().readAccessCookie(gomock.Any()).Return("", false).Times(1)
				m.cookies.EXPECT().readRefreshCookie(gomock.Any()).Return("refresh-1", true).Times(1)
				m.tokenStore.EXPECT().RefreshToken(gomock.Any(), "refresh-1").Return(&dbtypes.RefreshToken{
					UserID:     testUserID(t),
					ActiveRole: "ISSUER",
					ExpiresAt:  time.Now().Add(time.Hour),
				}, nil).Times(1)
				m.cookies.EXPECT().clearTokenCookies(gomock.Any()).Times(1)
				m.tokenStore.EXPECT().RevokeAllRefreshTokens(gomock.Any(), testUserID(t), "logout").Return(int64(3), nil).Times(1)
				m.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, e audit.Entry) error {
					if e.Event != audit.EventLogout {
						t.Errorf("audit event = %s, want LOGOUT", e.Event)
					}
					if e.Metadata["revoked_count"] != "3" {
						t.Errorf("revoked_count = %q, want 3", e.Metadata["revoked_count"])
					}

					return nil
				}).Times(1)
				m.users.EXPECT().UserByID(gomock.Any(), testUserID(t)).Return(&dbtypes.User{ID: testUserID(t), ProviderSubject: "sub-1"}, nil).Times(1)
				m.oidc.EXPECT().GlobalSignOut(gomock.Any(), "sub-1").Return(nil).Times(1)
				m.oidc.EXPECT().LogoutURL("https://issuer.example.com").Return("https://idp.example.com/logout?logout_uri=https%3A%2F%2Fissuer.example.com").Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://idp.example.com/logout?logout_uri=https%3A%2F%2Fissuer.example.com",
		},
		{
			name:   "explicit return url wins",
			target: "/auth/logout?returnUrl=https://issuer.example.com/goodbye",
			prepare: func(t *testing.T, m *authMocks) {
				m.cookies.EXPECT().readAccessCookie(gomock.Any()).Return("", false).Times(1)
				m.cookies.EXPECT().readRefreshCookie(gomock.Any()).Return("refresh-1", true).Times(1)
				m.tokenStore.EXPECT().RefreshToken(gomock.Any(), "refresh-1").Return(&dbtypes.RefreshToken{
					UserID:     testUserID(t),
					ActiveRole: "INVESTOR",
					ExpiresAt:  time.Now().Add(time.Hour),
				}, nil).Times(1)
				m.cookies.EXPECT().clearTokenCookies(gomock.Any()).Times(1)
				m.tokenStore.EXPECT().RevokeAllRefreshTokens(gomock.Any(), testUserID(t), "logout").Return(int64(1), nil).Times(1)
				m.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				m.users.EXPECT().UserByID(gomock.Any(), testUserID(t)).Return(nil, errors.Wrap(storage.ErrNotFound, "not found")).Times(1)
				m.oidc.EXPECT().LogoutURL("https://issuer.example.com/goodbye").Return("https://idp.example.com/logout").Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://idp.example.com/logout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, m := newTestAuth(t)
			tt.prepare(t, m)

			rr := httptest.NewRecorder()
			a.Logout().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rr.Code != tt.wantStatus {
				t.Fatalf("Logout() status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if got := rr.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Logout() Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}

func TestAuth_PasswordChanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		withClaims bool
		prepare    func(t *testing.T, m *authMocks)
		wantStatus int
	}{
		{
			name:       "unauthenticated",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revokes every session and stamps the change",
			withClaims: true,
			prepare: func(t *testing.T, m *authMocks) {
				m.tokenStore.EXPECT().RevokeAllRefreshTokens(gomock.Any(), testUserID(t), "password changed").Return(int64(2), nil).Times(1)
				m.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, e audit.Entry) error {
					if e.Event != audit.EventPasswordChanged {
						t.Errorf("audit event = %s, want PASSWORD_CHANGED", e.Event)
					}

					return nil
				}).Times(1)
				m.users.EXPECT().UserByID(gomock.Any(), testUserID(t)).Return(&dbtypes.User{ID: testUserID(t), ProviderSubject: "sub-1"}, nil).Times(1)
				m.users.EXPECT().SetPasswordChangedAt(gomock.Any(), testUserID(t), gomock.Any()).Return(nil).Times(1)
				m.oidc.EXPECT().GlobalSignOut(gomock.Any(), "sub-1").Return(nil).Times(1)
				m.cookies.EXPECT().clearTokenCookies(gomock.Any()).Times(1)
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, m := newTestAuth(t)
			if tt.prepare != nil {
				tt.prepare(t, m)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/password-changed", nil)
			if tt.withClaims {
				req = req.WithContext(context.WithValue(req.Context(), ctxAccessClaims, testClaims(t)))
			}

			rr := httptest.NewRecorder()
			a.PasswordChanged().ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("PasswordChanged() status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}
