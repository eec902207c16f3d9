package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

// NotFound responde caminhos sem rota no formato de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "not found", nil)
	})
}

// MethodNotAllowed mantém no Allow apenas os métodos de rota; OPTIONS é tratado pelo CORS
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods := make([]string, 0)
		for _, method := range strings.Split(w.Header().Get("Allow"), ",") {
			method = strings.TrimSpace(method)
			if method == "" || method == http.MethodOptions {
				continue
			}
			methods = append(methods, method)
		}
		sort.Strings(methods)
		w.Header().Set("Allow", strings.Join(methods, ", "))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte("Method " + r.Method + " Not Allowed"))
	})
}
