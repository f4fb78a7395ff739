package router

import (
	_ "pmsbridge/docs" // registers the swagger spec
	"pmsbridge/infras/metrics"
	"pmsbridge/internal/handlers/admin"
	"pmsbridge/internal/handlers/auth"
	"pmsbridge/internal/handlers/webhook"
	"pmsbridge/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const swaggerDocPath = "/swagger/doc.json"

type DomainHandlers struct {
	Webhook webhook.Handler
	Auth    auth.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	auth           middleware.Auth
	metrics        *metrics.Metrics
}

// SetupRoutes installs the middleware chain and every route. Callers may add routes afterwards but no middleware.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		r.app.Tracing,
		r.app.CORS(),
		r.app.RateLimit(),
		r.auth.APIKey,
	)

	if r.metrics != nil {
		router.Method("GET", "/metrics", r.metrics.Handler())
	}

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocPath)))

	r.DomainHandlers.Webhook.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Admin.Router(router)
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth, m *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		auth:           auth,
		metrics:        m,
	}
}
