package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/audit"
	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/Malcan-Technologies/shoraka-sub003/oidc"
	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/Malcan-Technologies/shoraka-sub003/statecodec"
	"github.com/Malcan-Technologies/shoraka-sub003/storage"
	"github.com/Malcan-Technologies/shoraka-sub003/tokens"
	"github.com/go-playground/errors/v5"
	gomock "go.uber.org/mock/gomock"
)

func callbackState(role roles.Role, signup bool) *statecodec.Payload {
	return &statecodec.Payload{
		Nonce:     "nonce-1",
		CSRFState: "csrf-1",
		Role:      role,
		Signup:    signup,
		IssuedAt:  time.Now(),
		TxID:      "tx-1",
	}
}

func callbackUser(t *testing.T, rs ...string) *dbtypes.User {
	t.Helper()

	return &dbtypes.User{
		ID:              testUserID(t),
		ProviderSubject: "sub-1",
		Email:           "user@example.com",
		EmailVerified:   true,
		Roles:           rs,
	}
}

func callbackPair() *tokens.Pair {
	return &tokens.Pair{
		AccessToken:      "access-1",
		RefreshToken:     "refresh-1",
		RefreshExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuth_Callback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		onboarding   bool
		prepare      func(t *testing.T, m *authMocks, events *[]audit.Event)
		wantStatus   int
		wantLocation string
		wantEvents   []audit.Event
	}{
		{
			name:   "invalid state aborts before exchange",
			target: "/auth/callback?state=forged&code=code-1",
			prepare: func(_ *testing.T, m *authMocks, _ *[]audit.Event) {
				m.codec.EXPECT().Decode(gomock.Any(), "forged").Return(nil, statecodec.ErrInvalidState).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/auth/login?message=Sign-in+failed",
		},
		{
			name:   "provider error on signup for existing account",
			target: "/auth/callback?state=sealed&error=invalid_request&error_description=User+already+exists",
			prepare: func(_ *testing.T, m *authMocks, _ *[]audit.Event) {
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Issuer, true), nil).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/auth/login?role=ISSUER&error=user_exists",
		},
		{
			name:   "provider error is terminal outside signup",
			target: "/auth/callback?state=sealed&error=access_denied&error_description=denied",
			prepare: func(_ *testing.T, m *authMocks, _ *[]audit.Event) {
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Investor, false), nil).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/auth/login?message=Sign-in+failed",
		},
		{
			name:   "provider outage during exchange",
			target: "/auth/callback?state=sealed&code=code-1",
			prepare: func(_ *testing.T, m *authMocks, _ *[]audit.Event) {
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Investor, false), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "code-1", "nonce-1").Return(nil, errors.Wrap(oidc.ErrProviderUnavailable, "discovery timeout")).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/auth/login?message=Sign-in+is+temporarily+unavailable",
		},
		{
			name:   "rejected code",
			target: "/auth/callback?state=sealed&code=stolen",
			prepare: func(_ *testing.T, m *authMocks, _ *[]audit.Event) {
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Investor, false), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "stolen", "nonce-1").Return(nil, errors.Wrap(oidc.ErrBadCode, "nonce mismatch")).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/auth/login?message=Sign-in+failed",
		},
		{
			name:   "investor login for existing user",
			target: "/auth/callback?state=sealed&code=code-1",
			prepare: func(t *testing.T, m *authMocks, _ *[]audit.Event) {
				user := callbackUser(t, "INVESTOR")
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Investor, false), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "code-1", "nonce-1").Return(&oidc.TokenSet{AccessToken: "pat", Subject: "sub-1"}, nil).Times(1)
				m.oidc.EXPECT().UserInfo(gomock.Any(), "pat").Return(&oidc.UserInfo{Subject: "sub-1", Email: "user@example.com", EmailVerified: true}, nil).Times(1)
				m.users.EXPECT().UserByProviderSubject(gomock.Any(), "sub-1").Return(user, nil).Times(1)
				m.engine.EXPECT().Issue(gomock.Any(), user, roles.Investor, gomock.Any(), gomock.Any(), gomock.Any()).Return(callbackPair(), nil).Times(1)
				m.cookies.EXPECT().readRefreshCookie(gomock.Any()).Return("", false).Times(1)
				m.cookies.EXPECT().setTokenCookies(gomock.Any(), "access-1", "refresh-1", gomock.Any()).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://invest.example.com/auth/callback?role=INVESTOR",
			wantEvents:   []audit.Event{audit.EventLogin},
		},
		{
			name:   "signup creates the user",
			target: "/auth/callback?state=sealed&code=code-1",
			prepare: func(t *testing.T, m *authMocks, _ *[]audit.Event) {
				created := callbackUser(t)
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Issuer, true), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "code-1", "nonce-1").Return(&oidc.TokenSet{AccessToken: "pat", Subject: "sub-1"}, nil).Times(1)
				m.oidc.EXPECT().UserInfo(gomock.Any(), "pat").Return(&oidc.UserInfo{Subject: "sub-1", Email: "user@example.com", EmailVerified: true}, nil).Times(1)
				m.users.EXPECT().UserByProviderSubject(gomock.Any(), "sub-1").Return(nil, errors.Wrap(storage.ErrNotFound, "not found")).Times(1)
				m.users.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(nil, errors.Wrap(storage.ErrNotFound, "not found")).Times(1)
				m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)
				m.engine.EXPECT().Issue(gomock.Any(), created, roles.Issuer, gomock.Any(), gomock.Any(), gomock.Any()).Return(callbackPair(), nil).Times(1)
				m.cookies.EXPECT().setTokenCookies(gomock.Any(), "access-1", "refresh-1", gomock.Any()).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://issuer.example.com/auth/callback?role=ISSUER",
			wantEvents:   []audit.Event{audit.EventSignup},
		},
		{
			name:   "role switch on a live session",
			target: "/auth/callback?state=sealed&code=code-1",
			prepare: func(t *testing.T, m *authMocks, _ *[]audit.Event) {
				user := callbackUser(t, "INVESTOR", "ISSUER")
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Issuer, false), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "code-1", "nonce-1").Return(&oidc.TokenSet{AccessToken: "pat", Subject: "sub-1"}, nil).Times(1)
				m.oidc.EXPECT().UserInfo(gomock.Any(), "pat").Return(&oidc.UserInfo{Subject: "sub-1", Email: "user@example.com", EmailVerified: true}, nil).Times(1)
				m.users.EXPECT().UserByProviderSubject(gomock.Any(), "sub-1").Return(user, nil).Times(1)
				m.engine.EXPECT().Issue(gomock.Any(), user, roles.Issuer, gomock.Any(), gomock.Any(), gomock.Any()).Return(callbackPair(), nil).Times(1)
				m.cookies.EXPECT().readRefreshCookie(gomock.Any()).Return("live-refresh", true).Times(1)
				m.tokenStore.EXPECT().RefreshToken(gomock.Any(), "live-refresh").Return(&dbtypes.RefreshToken{
					UserID:     testUserID(t),
					ActiveRole: "INVESTOR",
					ExpiresAt:  time.Now().Add(time.Hour),
				}, nil).Times(1)
				m.cookies.EXPECT().setTokenCookies(gomock.Any(), "access-1", "refresh-1", gomock.Any()).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://issuer.example.com/auth/callback?role=ISSUER",
			wantEvents:   []audit.Event{audit.EventRoleSwitched},
		},
		{
			name:   "admin without persisted role is denied once and signed out",
			target: "/auth/callback?state=sealed&code=code-1",
			prepare: func(t *testing.T, m *authMocks, events *[]audit.Event) {
				user := callbackUser(t, "INVESTOR")
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Admin, false), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "code-1", "nonce-1").Return(&oidc.TokenSet{AccessToken: "pat", Subject: "sub-1"}, nil).Times(1)
				m.oidc.EXPECT().UserInfo(gomock.Any(), "pat").Return(&oidc.UserInfo{Subject: "sub-1", Email: "user@example.com", EmailVerified: true}, nil).Times(1)
				m.users.EXPECT().UserByProviderSubject(gomock.Any(), "sub-1").Return(user, nil).Times(1)
				m.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, e audit.Entry) error {
					*events = append(*events, e.Event)

					return nil
				}).Times(1)
				m.oidc.EXPECT().GlobalSignOut(gomock.Any(), "sub-1").Return(nil).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/auth/login?message=Unauthorized",
			wantEvents:   []audit.Event{audit.EventAdminDenied},
		},
		{
			name:   "admin signup transaction grants the role",
			target: "/auth/callback?state=sealed&code=code-1",
			prepare: func(t *testing.T, m *authMocks, _ *[]audit.Event) {
				user := callbackUser(t, "INVESTOR")
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Admin, true), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "code-1", "nonce-1").Return(&oidc.TokenSet{AccessToken: "pat", Subject: "sub-1"}, nil).Times(1)
				m.oidc.EXPECT().UserInfo(gomock.Any(), "pat").Return(&oidc.UserInfo{Subject: "sub-1", Email: "user@example.com", EmailVerified: true}, nil).Times(1)
				m.users.EXPECT().UserByProviderSubject(gomock.Any(), "sub-1").Return(user, nil).Times(1)
				m.users.EXPECT().GrantRole(gomock.Any(), testUserID(t), "ADMIN").Return(nil).Times(1)
				m.oidc.EXPECT().SetRoleAttribute(gomock.Any(), "sub-1", gomock.Any()).Return(nil).Times(1)
				m.engine.EXPECT().Issue(gomock.Any(), gomock.Any(), roles.Admin, gomock.Any(), gomock.Any(), gomock.Any()).Return(callbackPair(), nil).Times(1)
				m.cookies.EXPECT().setTokenCookies(gomock.Any(), "access-1", "refresh-1", gomock.Any()).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://admin.example.com/auth/callback?role=ADMIN",
			wantEvents:   []audit.Event{audit.EventSignup},
		},
		{
			name:       "incomplete onboarding adds the redirect hint",
			target:     "/auth/callback?state=sealed&code=code-1",
			onboarding: true,
			prepare: func(t *testing.T, m *authMocks, _ *[]audit.Event) {
				user := callbackUser(t, "ISSUER")
				m.codec.EXPECT().Decode(gomock.Any(), "sealed").Return(callbackState(roles.Issuer, false), nil).Times(1)
				m.oidc.EXPECT().Exchange(gomock.Any(), "code-1", "nonce-1").Return(&oidc.TokenSet{AccessToken: "pat", Subject: "sub-1"}, nil).Times(1)
				m.oidc.EXPECT().UserInfo(gomock.Any(), "pat").Return(&oidc.UserInfo{Subject: "sub-1", Email: "user@example.com", EmailVerified: true}, nil).Times(1)
				m.users.EXPECT().UserByProviderSubject(gomock.Any(), "sub-1").Return(user, nil).Times(1)
				m.engine.EXPECT().Issue(gomock.Any(), user, roles.Issuer, gomock.Any(), gomock.Any(), gomock.Any()).Return(callbackPair(), nil).Times(1)
				m.cookies.EXPECT().readRefreshCookie(gomock.Any()).Return("", false).Times(1)
				m.onboarding.EXPECT().OnboardingComplete(gomock.Any(), testUserID(t), roles.Issuer).Return(false, nil).Times(1)
				m.cookies.EXPECT().setTokenCookies(gomock.Any(), "access-1", "refresh-1", gomock.Any()).Times(1)
			},
			wantStatus:   http.StatusFound,
			wantLocation: "https://issuer.example.com/auth/callback?onboarding=required&role=ISSUER",
			wantEvents:   []audit.Event{audit.EventLogin},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, m := newTestAuth(t)
			if tt.onboarding {
				a.onboarding = m.onboarding
			}

			events := []audit.Event{}
			m.recorder.EXPECT().RecordBestEffort(gomock.Any(), gomock.Any()).Do(func(_ any, e audit.Entry) {
				events = append(events, e.Event)
			}).AnyTimes()

			if tt.prepare != nil {
				tt.prepare(t, m, &events)
			}

			rr := httptest.NewRecorder()
			a.Callback().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rr.Code != tt.wantStatus {
				t.Fatalf("Callback() status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if got := rr.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Callback() Location = %q, want %q", got, tt.wantLocation)
			}
			if len(tt.wantEvents) > 0 {
				if len(events) != len(tt.wantEvents) || events[0] != tt.wantEvents[0] {
					t.Errorf("Callback() audit events = %v, want %v", events, tt.wantEvents)
				}
			}
		})
	}
}
