package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pmsbridge/infras/otel/mocks"
	integrationMocks "pmsbridge/internal/domains/integration/mocks"
	"pmsbridge/internal/handlers/admin"
	"pmsbridge/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *integrationMocks.MockIntegration) {
	ctrl := gomock.NewController(t)
	svc := integrationMocks.NewMockIntegration(ctrl)

	handler := admin.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestRegisterWebhook(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(m *integrationMocks.MockIntegration)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "configured endpoint",
			target: "/register-webhook",
			setupMock: func(m *integrationMocks.MockIntegration) {
				m.EXPECT().RegisterWebhook(gomock.Any(), "").Return(json.RawMessage(`{"id":"sub-1"}`), nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"id":"sub-1"}}`,
		},
		{
			name:   "override passed through",
			target: "/register-webhook?url=https://staging.example.com/webhook",
			setupMock: func(m *integrationMocks.MockIntegration) {
				m.EXPECT().RegisterWebhook(gomock.Any(), "https://staging.example.com/webhook").Return(json.RawMessage(`{}`), nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{}}`,
		},
		{
			name:   "vendor failure",
			target: "/register-webhook",
			setupMock: func(m *integrationMocks.MockIntegration) {
				m.EXPECT().RegisterWebhook(gomock.Any(), "").Return(nil, failure.BadRequestFromString("no webhook url configured"))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"no webhook url configured"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAkiaProperties(t *testing.T) {
	t.Run("listed", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().ListAkiaProperties(gomock.Any()).Return(json.RawMessage(`[{"id":190}]`), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/akia/properties", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[{"id":190}]}`, rec.Body.String())
	})

	t.Run("not authenticated", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().ListAkiaProperties(gomock.Any()).Return(nil, failure.ErrNotAuthenticated)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/akia/properties", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
