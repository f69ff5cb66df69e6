package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/derhornspieler/gke-kubeconfig/internal/config"
	"github.com/derhornspieler/gke-kubeconfig/internal/handler"
	"github.com/derhornspieler/gke-kubeconfig/internal/middleware"
)

// NewRouter builds the complete HTTP handler with all routes and middleware.
func NewRouter(cfg *config.Config, h *handler.Handler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// --- Unauthenticated operational routes ---
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// --- Render API, rate-limited per client IP ---
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/v1/kubeconfig", h.RenderKubeconfigQuery)
	apiMux.HandleFunc("POST /api/v1/kubeconfig", h.RenderKubeconfig)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	mux.Handle("/api/v1/", limiter.Limit(apiMux))

	// --- Apply global middleware (outermost first) ---
	var root http.Handler = mux
	if cfg.CORSOrigin != "" {
		root = cors(cfg.CORSOrigin)(root)
	}
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID(root)

	return root
}

// cors adds CORS headers for browser-based callers.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
