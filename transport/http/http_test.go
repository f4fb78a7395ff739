package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pmsbridge/config"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel/mocks"
	authMocks "pmsbridge/internal/domains/auth/mocks"
	integrationMocks "pmsbridge/internal/domains/integration/mocks"
	reservationMocks "pmsbridge/internal/domains/reservation/mocks"
	"pmsbridge/internal/domains/reservation/service"
	"pmsbridge/internal/handlers/admin"
	"pmsbridge/internal/handlers/auth"
	"pmsbridge/internal/handlers/webhook"
	"pmsbridge/permissions"
	transport "pmsbridge/transport/http"
	"pmsbridge/transport/http/middleware"
	"pmsbridge/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	handler     http.Handler
	webhook     *reservationMocks.MockWebhook
	integration *integrationMocks.MockIntegration
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.APIKey = "operator-key"

	f := fixture{
		webhook:     reservationMocks.NewMockWebhook(ctrl),
		integration: integrationMocks.NewMockIntegration(ctrl),
	}

	r := router.New(
		router.DomainHandlers{
			Webhook: webhook.New(f.webhook, ot),
			Auth:    auth.New(authMocks.NewMockAuth(ctrl), ot),
			Admin:   admin.New(f.integration, ot),
		},
		middleware.NewAppMiddleware(ot, cfg, nil),
		middleware.NewAuthMiddleware(ot, permissions.Get(), cfg),
		metrics.New(),
	)

	server := transport.New(cfg, r)
	f.handler = server.Handler()

	assert.Equal(t, transport.ServerStateReady, server.State())

	return f
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/health", "/metrics"} {
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestWebhookIsPublic(t *testing.T) {
	f := newFixture(t)
	f.webhook.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(service.Result{Outcome: "success"}, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"confirmationId":"ABC123"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOperatorRoutesNeedAPIKey(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/akia/properties", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.integration.EXPECT().ListAkiaProperties(gomock.Any()).Return(json.RawMessage(`[]`), nil)

	req := httptest.NewRequest(http.MethodGet, "/akia/properties", nil)
	req.Header.Set("X-API-Key", "operator-key")

	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwaggerDocIsPublic(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	paths, ok := doc["paths"].(map[string]any)
	assert.True(t, ok)

	for _, route := range []string{"/webhook", "/auth/login", "/auth/callback", "/register-webhook", "/akia/properties", "/health"} {
		assert.Contains(t, paths, route)
	}
}
