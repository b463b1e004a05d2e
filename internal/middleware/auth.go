package middleware

import (
	"net/http"

	"github.com/momhive/momhive/internal/ctxkeys"
	"github.com/momhive/momhive/internal/service"
)

// Session decodes the session cookie and puts the username on the context
func Session(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			username, err := authService.VerifyJWT(cookie.Value)
			if err != nil {
				// expired or tampered
				authService.ClearSession(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin sends anonymous visitors to /login
func RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Username(r.Context()) == "" {
			if r.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Redirect", "/login")
				w.WriteHeader(http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
