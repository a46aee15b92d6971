package server

import (
	"net/http"
	"slices"

	"github.com/agbru/armcalc/internal/config"
)

// corsMethods is announced to CORS clients. Every endpoint is read-only, so
// nothing beyond GET and the preflight itself is ever allowed.
const corsMethods = "GET, OPTIONS"

// hardeningHeaders are set on every response. The API only serves JSON, so
// the content policy forbids loading anything at all.
var hardeningHeaders = [...][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Cache-Control", "no-store"},
}

// SecurityConfig holds the CORS policy and the request limits.
type SecurityConfig struct {
	// EnableCORS turns on the Access-Control-* response headers.
	EnableCORS bool
	// AllowedOrigins lists accepted Origin values. "*" accepts any origin.
	AllowedOrigins []string
	// MaxRepeat is the largest accepted repeat count. One request times
	// 2*repeat checker calls, plus a batch of the same size per reference
	// entry.
	MaxRepeat int
}

// DefaultSecurityConfig accepts any origin and caps repeat at
// config.MaxRepeat.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		MaxRepeat:      config.MaxRepeat,
	}
}

// corsOrigin returns the Access-Control-Allow-Origin value for origin, or ""
// when the origin is not accepted.
func (c SecurityConfig) corsOrigin(origin string) string {
	if slices.Contains(c.AllowedOrigins, "*") {
		return "*"
	}
	if origin != "" && slices.Contains(c.AllowedOrigins, origin) {
		return origin
	}
	return ""
}

// SecurityMiddleware sets the hardening headers, applies the CORS policy
// and answers preflight requests with 204 without calling next.
func SecurityMiddleware(cfg SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range hardeningHeaders {
			h.Set(kv[0], kv[1])
		}
		if !cfg.EnableCORS {
			next(w, r)
			return
		}

		if allow := cfg.corsOrigin(r.Header.Get("Origin")); allow != "" {
			h.Set("Access-Control-Allow-Origin", allow)
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Allow-Headers", "Accept")
			h.Set("Access-Control-Max-Age", "600")
			if allow != "*" {
				h.Add("Vary", "Origin")
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}
