package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/montluxe/storefront/api/controllers"
	"github.com/montluxe/storefront/api/middleware"
	"github.com/montluxe/storefront/internal/auth"
	"github.com/montluxe/storefront/internal/catalog"
	"github.com/montluxe/storefront/pkg/config"
	"github.com/montluxe/storefront/pkg/db"
	"github.com/montluxe/storefront/pkg/logger"
	"github.com/montluxe/storefront/pkg/metrics"
	"github.com/montluxe/storefront/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler
	AuthService    auth.Service
	CatalogService catalog.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)
	if p.HTTPMetrics != nil {
		r.Use(p.HTTPMetrics.Middleware())
	}

	// The interface values must stay nil when no client is configured; a
	// typed-nil *redis.Client would slip past the handlers' nil checks.
	var (
		redisPinger redis.Pinger
		rateStore   middleware.RateLimiterStore
	)
	if p.Redis != nil {
		redisPinger = p.Redis
		rateStore = p.Redis
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		0,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, redisPinger))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", p.MetricsHandler)
	} else {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.With(middleware.AuthRateLimit(loginPolicy, rateStore, logg)).
		Post("/login", controllers.AuthLogin(p.AuthService, logg))
	r.With(middleware.AuthRateLimit(signupPolicy, rateStore, logg)).
		Post("/signup", controllers.AuthSignup(p.AuthService, logg))

	r.Get("/products", controllers.ProductsList(p.CatalogService, logg))
	r.Get("/products/{id}", controllers.ProductGet(p.CatalogService, logg))
	r.Get("/api/categories", controllers.CategoriesList(p.CatalogService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Delete("/users/{id}", controllers.UserDelete(p.AuthService, logg))
	})

	return r
}
