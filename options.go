package auth

// Option configures an Auth core.
type Option func(*Auth)

// WithLogHandler sets the LogHandler. (default: error logging via cccteam/logger)
func WithLogHandler(l LogHandler) Option {
	return func(a *Auth) {
		a.handle = l
	}
}

// WithCookieDomain sets the shared parent domain for the token cookies so
// every portal under it can present them.
func WithCookieDomain(domain string) Option {
	return func(a *Auth) {
		if c, ok := a.cookies.(*cookieClient); ok {
			c.domain = domain
		}
	}
}

// WithDevMode relaxes cookie attributes and allows bearer-token transport of
// the refresh token for local cross-port development.
func WithDevMode(enabled bool) Option {
	return func(a *Auth) {
		a.devMode = enabled
		if c, ok := a.cookies.(*cookieClient); ok {
			c.devMode = enabled
		}
	}
}

// WithOnboardingChecker wires the onboarding status lookup used for the
// post-login redirect hint.
func WithOnboardingChecker(o OnboardingChecker) Option {
	return func(a *Auth) {
		a.onboarding = o
	}
}

// WithLoginPath sets the sign-in entry path used for error redirects.
// (default: /auth/login)
func WithLoginPath(p string) Option {
	return func(a *Auth) {
		a.loginPath = p
	}
}

// WithPortalCallbackPath sets the path appended to the portal base URL for
// the post-login redirect. (default: /auth/callback)
func WithPortalCallbackPath(p string) Option {
	return func(a *Auth) {
		a.callbackPath = p
	}
}
