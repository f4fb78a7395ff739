package akia

//go:generate go run go.uber.org/mock/mockgen -source=./akia.go -destination=./mocks/akia_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pmsbridge/config"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/remote"
	"pmsbridge/shared/constant"
)

const (
	pathCustomers    = "/v3/customers"
	pathProperties   = "/v3/properties"
	pathReservations = "/v4/reservations"
	pathEvents       = "/integrations/events"
)

// AccessTokenProvider returns a currently valid bearer token.
type AccessTokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is the Akia guest messaging API.
type Client interface {
	UpsertCustomer(ctx context.Context, customer Customer) (ID, error)
	UpsertReservation(ctx context.Context, reservation Reservation) (ID, error)
	CancelReservation(ctx context.Context, externID string) error
	PatchReservation(ctx context.Context, reservationRef string, patch ReservationPatch) error
	TriggerEvent(ctx context.Context, eventName, reservationRef string) error
	ListProperties(ctx context.Context) (json.RawMessage, error)
	ConversationURL(customerID ID) string
	PropertyID() int
}

type clientImpl struct {
	remote           *remote.Client
	appURL           string
	conversationPath string
	propertyID       int
}

func New(cfg *config.Config, tokens AccessTokenProvider, ot otel.Otel, m *metrics.Metrics) Client {
	return NewClient(remote.Options{
		Service: constant.ServiceAkia,
		BaseURL: cfg.Akia.BaseURL,
		Timeout: time.Duration(cfg.Akia.TimeoutSeconds) * time.Second,
		Headers: BearerHeaders(tokens),
	}, cfg.Akia.AppURL, cfg.Akia.ConversationPath, cfg.Akia.PropertyID, ot, m)
}

func NewClient(opts remote.Options, appURL, conversationPath string, propertyID int, ot otel.Otel, m *metrics.Metrics) Client {
	return &clientImpl{
		remote:           remote.New(opts, ot, m),
		appURL:           strings.TrimRight(appURL, "/"),
		conversationPath: strings.Trim(conversationPath, "/"),
		propertyID:       propertyID,
	}
}

// BearerHeaders asks the provider for a token before every call.
func BearerHeaders(tokens AccessTokenProvider) remote.HeaderProvider {
	return func(ctx context.Context) (http.Header, error) {
		token, err := tokens.AccessToken(ctx)
		if err != nil {
			return nil, err
		}

		header := http.Header{}
		header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)

		return header, nil
	}
}

func (c *clientImpl) UpsertCustomer(ctx context.Context, customer Customer) (ID, error) {
	if customer.PropertyID == 0 {
		customer.PropertyID = c.propertyID
	}

	var res created
	if err := c.remote.Invoke(ctx, http.MethodPost, pathCustomers, customer, &res); err != nil {
		return "", fmt.Errorf("failed to upsert akia customer: %w", err)
	}

	if res.ID == "" {
		return "", &remote.Error{Service: constant.ServiceAkia, Kind: remote.KindRemote, StatusCode: http.StatusOK, Message: "customer response carried no id"}
	}

	return res.ID, nil
}

func (c *clientImpl) UpsertReservation(ctx context.Context, reservation Reservation) (ID, error) {
	var res created
	if err := c.remote.Invoke(ctx, http.MethodPost, pathReservations, reservation, &res); err != nil {
		return "", fmt.Errorf("failed to upsert akia reservation: %w", err)
	}

	return res.ID, nil
}

func (c *clientImpl) CancelReservation(ctx context.Context, externID string) error {
	if err := c.remote.Invoke(ctx, http.MethodPost, pathReservations, cancellation{ExternID: externID, Status: StatusCancelled}, nil); err != nil {
		return fmt.Errorf("failed to cancel akia reservation: %w", err)
	}

	return nil
}

func (c *clientImpl) PatchReservation(ctx context.Context, reservationRef string, patch ReservationPatch) error {
	endpoint := pathReservations + "/" + url.PathEscape(reservationRef)

	if err := c.remote.Invoke(ctx, http.MethodPatch, endpoint, patch, nil); err != nil {
		return fmt.Errorf("failed to patch akia reservation: %w", err)
	}

	return nil
}

func (c *clientImpl) TriggerEvent(ctx context.Context, eventName, reservationRef string) error {
	payload := integrationEvent{EventName: eventName, Guest: eventGuest{ReservationID: reservationRef}}

	if err := c.remote.Invoke(ctx, http.MethodPost, pathEvents, payload, nil); err != nil {
		return fmt.Errorf("failed to trigger akia event %s: %w", eventName, err)
	}

	return nil
}

func (c *clientImpl) ListProperties(ctx context.Context) (json.RawMessage, error) {
	var res json.RawMessage
	if err := c.remote.Invoke(ctx, http.MethodGet, pathProperties, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to list akia properties: %w", err)
	}

	return res, nil
}

func (c *clientImpl) ConversationURL(customerID ID) string {
	if customerID == "" {
		return constant.Empty
	}

	return fmt.Sprintf("%s/%s/%s", c.appURL, c.conversationPath, customerID)
}

func (c *clientImpl) PropertyID() int {
	return c.propertyID
}
