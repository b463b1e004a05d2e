package middleware

import (
	"net/http"

	"github.com/momhive/momhive/internal/ctxkeys"
)

// WithURLPath records the request path for nav highlighting
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxkeys.WithURLPath(r.Context(), r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
