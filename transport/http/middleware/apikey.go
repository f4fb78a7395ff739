package middleware

import (
	"crypto/subtle"
	"net/http"

	"pmsbridge/config"
	"pmsbridge/infras/otel"
	"pmsbridge/permissions"
	"pmsbridge/shared/constant"
	"pmsbridge/shared/failure"
	"pmsbridge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth guards operator routes with the shared API key.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// APIKey lets public routes through and checks X-API-Key on everything else.
// Routes missing from the table are treated as protected.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		if m.permission != nil && m.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		path := routePattern(request)
		if path == "" {
			// Unknown route, let the router answer 404.
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "api_key",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if m.permission != nil {
			if permission, found := m.permission.FindPermissions(path, request.Method); found && permission.Skip {
				next.ServeHTTP(writer, request)

				return
			}
		}

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.TraceError(failure.ErrMissingAPIKey)
			response.WithError(writer, failure.ErrMissingAPIKey)

			return
		}

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			log.Warn().Str("path", path).Msg("rejected operator request with invalid api key")

			scope.TraceError(failure.ErrInvalidAPIKey)
			response.WithError(writer, failure.ErrInvalidAPIKey)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return ""
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
