package middleware

import (
	"net/http"
	"strings"

	"github.com/momhive/momhive/internal/ctxkeys"
	"github.com/momhive/momhive/internal/ui"
)

// Flash moves a pending flash message from its cookie onto the context.
// Only page loads consume it.
func Flash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		msg := ui.ConsumeFlash(w, r)
		if msg == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := ctxkeys.WithFlash(r.Context(), msg)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
