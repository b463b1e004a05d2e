package middleware

import (
	"log/slog"
	"net/http"
)

// BodyLimit caps request bodies before any later middleware parses them.
// routes maps "METHOD /path" patterns to their own cap; everything else gets
// def. Bodies that declare a larger Content-Length are refused up front.
func BodyLimit(def int64, routes map[string]int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			limit := def
			if l, ok := routes[r.Method+" "+r.URL.Path]; ok {
				limit = l
			}

			if r.ContentLength > limit {
				slog.Warn("request body too large",
					"path", r.URL.Path,
					"method", r.Method,
					"content_length", r.ContentLength,
					"limit", limit,
				)
				http.Error(w, "Request body too large", http.StatusBadRequest)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
