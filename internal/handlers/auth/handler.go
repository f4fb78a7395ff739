package auth

import (
	"net/http"

	"pmsbridge/infras/otel"
	"pmsbridge/internal/domains/auth/model/dto"
	"pmsbridge/internal/domains/auth/service"
	"pmsbridge/shared/constant"
	"pmsbridge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", handler.Login)
		r.Get("/callback", handler.Callback)
	})
}

// Login redirects the operator to the Akia consent page.
// @Summary Start the Akia authorization
// @Description Redirects to the Akia consent page with a signed state.
// @Tags Auth
// @Success 302 "Redirect to Akia"
// @Failure 500 {object} response.Error
// @Router /auth/login [get]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	loginURL, err := handler.service.LoginURL(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build akia login url")

		response.WithError(w, err)

		return
	}

	http.Redirect(w, r, loginURL, http.StatusFound)
}

// Callback exchanges the authorization code and stores the resulting token.
// @Summary Complete the Akia authorization
// @Description Verifies the state, exchanges the code and stores the Akia token.
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Signed state from /auth/login"
// @Param error query string false "Error reported by Akia"
// @Success 200 {object} response.Data[dto.CallbackResponse] "Token stored"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/callback [get]
func (handler *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Callback")
	defer scope.End()

	req := dto.CallbackRequestFromQuery(r.URL.Query())

	res, err := handler.service.Callback(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("akia oauth callback failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Akia token stored")

	response.WithJSON(w, http.StatusOK, res)
}
