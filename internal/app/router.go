package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/metrics"
	"github.com/heartmarshall/tradedesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/tradedesk-backend/internal/transport/rest"
)

// adminTokenValidator is satisfied by *auth.JWTManager.
type adminTokenValidator interface {
	ValidateAdminToken(token string) (string, error)
}

// RouterDeps holds everything the HTTP router mounts.
type RouterDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Intake   *rest.IntakeHandler
	Admin    *rest.AdminHandler
	Health   *rest.HealthHandler
	Tokens   adminTokenValidator
	Limiter  middleware.Limiter
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// NewRouter builds the chi router:
//
//	GET  /live /ready /health /metrics
//	POST /api/applications           public, rate limited per client IP
//	     /api/admin/...              admin bearer token required
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.ClientIP(d.Config.Server.TrustProxy),
		middleware.Logger(d.Logger),
		middleware.CORS(d.Config.CORS),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit("intake", d.Limiter, d.Metrics, d.Logger))
			d.Intake.Register(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(d.Tokens))
			d.Admin.Register(r)
		})
	})

	return r
}
