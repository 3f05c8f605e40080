package middlewares

import (
	"net/http"
	"strings"
)

const (
	allowHeaders = "Content-Type,Authorization,true"
	allowMethods = "GET,PATCH,POST,DELETE,PUT,OPTIONS"
	apiPrefix    = "/api/"
)

// Cors sets the allowed headers and methods on every response and the allowed
// origin on /api/* responses. Preflight requests under /api/ are answered directly.
func Cors(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Set("Access-Control-Allow-Methods", allowMethods)

			isAPI := strings.HasPrefix(r.URL.Path, apiPrefix) || r.URL.Path == strings.TrimSuffix(apiPrefix, "/")
			if isAPI {
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				h.Add("Vary", "Origin")
			}

			if isAPI && r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
