package registry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"PriceRegistry/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// WriteLimit > 0 turns on per-IP rate limiting for mutating routes.
	WriteLimit         int
	WriteWindowSeconds int
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupRoutes(r, s, deps)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))
	}
}

func setupRoutes(r *chi.Mux, s *Server, deps HTTPDeps) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.handleReady)

	write := writeGuard(deps)

	r.Route("/prices", func(rr chi.Router) {
		rr.Get("/", s.handleList)
		rr.With(write).Post("/", s.handleCreate)
		rr.Get("/{id}", s.handleGet)
		rr.With(write).Patch("/{id}", s.handleUpdate)
		rr.With(write).Delete("/{id}", s.handleDelete)
	})

	if deps.MetricsEnabled && deps.Registry != nil {
		r.With(kit.MetricsAuth(deps.MetricsToken)).
			Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}
}

func writeGuard(deps HTTPDeps) func(http.Handler) http.Handler {
	if deps.WriteLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return kit.NewIPRateLimiter(deps.WriteLimit, deps.WriteWindowSeconds).Middleware
}
