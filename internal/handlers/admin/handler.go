package admin

import (
	"net/http"

	"pmsbridge/infras/otel"
	"pmsbridge/internal/domains/integration/service"
	"pmsbridge/shared/constant"
	"pmsbridge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamURL = "url"

type Handler struct {
	service service.Integration
	otel    otel.Otel
}

func New(service service.Integration, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/register-webhook", handler.RegisterWebhook)
	r.Get("/akia/properties", handler.AkiaProperties)
}

// RegisterWebhook subscribes the bridge to Agilysys reservation events. An optional url query overrides the target.
// @Summary Register the Agilysys webhook
// @Description Subscribes the endpoint to reservation created, updated, cancelled, check-in and check-out events.
// @Tags Admin
// @Produce json
// @Param url query string false "Endpoint override"
// @Success 200 {object} response.Data[object] "Agilysys subscription"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /register-webhook [get]
// @Security APIKeyAuth
func (handler *Handler) RegisterWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterWebhook")
	defer scope.End()

	res, err := handler.service.RegisterWebhook(ctx, r.URL.Query().Get(queryParamURL))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register webhook")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AkiaProperties godoc
// @Summary List Akia properties
// @Description Calls Akia with the stored token, which also confirms the authorization works.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[object] "Akia properties"
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /akia/properties [get]
// @Security APIKeyAuth
func (handler *Handler) AkiaProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AkiaProperties")
	defer scope.End()

	res, err := handler.service.ListAkiaProperties(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list akia properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
