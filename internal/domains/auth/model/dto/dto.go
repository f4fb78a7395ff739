package dto

import (
	"net/url"
	"strings"
	"time"

	"pmsbridge/internal/domains/token/model"
	"pmsbridge/shared/constant"
)

// CallbackRequest is the query Akia appends when it redirects back after consent.
type CallbackRequest struct {
	Code  string `json:"code"  validate:"required"`
	State string `json:"state" validate:"required"`
	// Error is set instead of Code when the operator declined the grant.
	Error string `json:"error"`
}

func CallbackRequestFromQuery(query url.Values) CallbackRequest {
	return CallbackRequest{
		Code:  strings.TrimSpace(query.Get(constant.QueryParamCode)),
		State: strings.TrimSpace(query.Get(constant.QueryParamState)),
		Error: strings.TrimSpace(query.Get(constant.QueryParamError)),
	}
}

type CallbackResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c *CallbackResponse) FromToken(token model.AuthToken) {
	c.Message = "akia authorization stored"
	c.ExpiresAt = token.ExpiresAtTime()
}
