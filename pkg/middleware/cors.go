package middleware

import (
	"net/http"
)

const (
	allowedOrigin  = "*"
	allowedMethods = "GET, POST, OPTIONS"
	allowedHeaders = "Content-Type"
)

// Cors libera qualquer origem. Pre-flight (OPTIONS) responde 200 sem corpo e não chega às rotas.
func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
