package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/momhive/momhive/internal/config"
	"github.com/momhive/momhive/internal/ctxkeys"
)

// SecurityHeaders sets CSP (with the request nonce) and the usual hardening
// headers. With S3 storage the bucket origin is allowed for images.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		scriptSrc := "'self'"
		if nonce := GetNonce(r.Context()); nonce != "" {
			scriptSrc += fmt.Sprintf(" 'nonce-%s'", nonce)
		}

		imgSrc := "'self' data:"
		if origin := storageOrigin(ctxkeys.Config(r.Context())); origin != "" {
			imgSrc += " " + origin
		}

		h.Set("Content-Security-Policy", strings.Join([]string{
			"default-src 'self'",
			"script-src " + scriptSrc,
			"style-src 'self' 'unsafe-inline'",
			"img-src " + imgSrc,
			"media-src 'self' https:",
			"frame-src https://www.youtube.com https://open.spotify.com",
			"connect-src 'self'",
			"object-src 'none'",
			"base-uri 'self'",
			"frame-ancestors 'none'",
		}, "; "))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		cfg := ctxkeys.Config(r.Context())
		if cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

func storageOrigin(cfg *config.Config) string {
	if cfg == nil || cfg.StorageDriver != config.StorageDriverS3 {
		return ""
	}
	if cfg.S3Endpoint != "" {
		return strings.TrimSuffix(cfg.S3Endpoint, "/")
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
}
