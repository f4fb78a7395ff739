package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"pmsbridge/infras/otel"
	"pmsbridge/internal/domains/reservation/service"
	"pmsbridge/shared/constant"
	"pmsbridge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 5 << 20

type Handler struct {
	service service.Webhook
	otel    otel.Otel
}

// Ack is returned for every delivery so the PMS never redelivers.
type Ack struct {
	Outcome            string `json:"outcome"`
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
	Path               string `json:"path,omitempty"`
	Event              string `json:"event,omitempty"`
}

func New(service service.Webhook, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/webhook", handler.Receive)
}

// Receive processes one Agilysys delivery and acknowledges it with 200 whatever happened downstream.
// @Summary Receive an Agilysys reservation event
// @Description Resolves the confirmation number, syncs the reservation to Akia and HubSpot and reports the outcome.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param request body object true "Agilysys webhook payload"
// @Success 200 {object} response.Data[webhook.Ack] "Delivery acknowledged"
// @Router /webhook [post]
func (handler *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Webhook")
	defer scope.End()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook body")

		response.WithJSON(w, http.StatusOK, Ack{Outcome: constant.OutcomeSkipped})

		return
	}

	// The sync finishes even if the PMS hangs up early.
	result, err := handler.service.HandleEvent(context.WithoutCancel(ctx), body)
	if err != nil {
		scope.TraceError(err)
		logResult(err)
	}

	ack := Ack{
		Outcome:            result.Outcome,
		ConfirmationNumber: result.ConfirmationNumber,
		Path:               string(result.Plan.Path),
		Event:              string(result.Event),
	}

	if ack.Outcome == "" {
		ack.Outcome = constant.OutcomeSkipped
	}

	scope.SetAttribute("webhook.outcome", ack.Outcome)

	response.WithJSON(w, http.StatusOK, ack)
}

func logResult(err error) {
	switch {
	case errors.Is(err, service.ErrIdentifierNotFound), errors.Is(err, service.ErrSyncInProgress):
		log.Info().Err(err).Msg("webhook acknowledged without sync")
	default:
		log.Error().Err(err).Msg("webhook acknowledged after failure")
	}
}
