package middleware

import (
	"fmt"
	"net/http"

	"github.com/nzoschke/productivity/internal/ctxkeys"
)

// SecurityHeaders sets a restrictive policy for the HTML views. Inline styles
// and scripts only run with the request nonce; images may come from any
// https origin since trackers store arbitrary image links.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce := GetNonce(r.Context())

		imgSrc := "'self' https: data:"
		if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.S3Endpoint != "" {
			imgSrc += " " + cfg.S3Endpoint
		}
		csp := fmt.Sprintf("default-src 'self'; img-src %s; style-src 'self' 'nonce-%s'; script-src 'self' 'nonce-%s'; frame-ancestors 'none'", imgSrc, nonce, nonce)

		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
