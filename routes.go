package auth

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the authentication endpoints on r. Login and refresh sit
// behind a per-IP rate limit since both are reachable without credentials.
func (a *Auth) Routes(r chi.Router) {
	limited := RateLimit(5, 10)

	r.Group(func(r chi.Router) {
		r.Use(limited)
		r.Get("/auth/login", a.Login())
		r.Post("/auth/refresh-token", a.RefreshToken())
	})

	r.Get("/auth/callback", a.Callback())
	r.Get("/auth/logout", a.Logout())
	r.Get("/auth/authenticated", a.Authenticated())

	r.Group(func(r chi.Router) {
		r.Use(a.VerifyAccess)
		r.Post("/auth/password-changed", a.PasswordChanged())
	})
}
