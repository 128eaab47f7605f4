package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aromaline/inventory-service/internal/security"
)

// NewRouter assembles the full HTTP surface. Everything under /api/v1 except
// the login endpoint requires a valid Bearer token.
func NewRouter(
	h *Handlers,
	authHandler *AuthHandler,
	jwtManager *security.JWTManager,
	logger *zap.Logger,
	registry *prometheus.Registry,
	requestTimeout time.Duration,
) *chi.Mux {
	r := chi.NewRouter()

	metrics := NewMetrics(registry)
	h.Metrics = metrics

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	r.Use(metrics.Middleware)
	r.Use(Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(Auth(jwtManager))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.handleListProducts)
				r.Post("/", h.handleCreateProduct)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetProduct)
					r.Put("/", h.handleUpdateProduct)
					r.Delete("/", h.handleDeleteProduct)

					r.Put("/details", h.handleUpdateVariant)
					r.Post("/activate", h.handleActivateProduct)

					r.Post("/stock/add", h.handleAddStock)
					r.Post("/stock/remove", h.handleRemoveStock)

					r.Get("/history", h.handleListHistory)
				})
			})
		})
	})

	return r
}
