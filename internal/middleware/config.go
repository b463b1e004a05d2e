package middleware

import (
	"net/http"

	"github.com/momhive/momhive/internal/config"
	"github.com/momhive/momhive/internal/ctxkeys"
)

// Config puts the sanitized configuration on the request context
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
