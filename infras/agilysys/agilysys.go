package agilysys

//go:generate go run go.uber.org/mock/mockgen -source=./agilysys.go -destination=./mocks/agilysys_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pmsbridge/config"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/remote"
	"pmsbridge/shared"
	"pmsbridge/shared/cache"
	"pmsbridge/shared/constant"

	"github.com/rs/zerolog/log"
)

var ErrNoAccessToken = errors.New("no access token in agilysys auth response")

// WebhookEvents are the reservation lifecycle events the bridge subscribes to.
var WebhookEvents = []string{
	"RESERVATION_CREATED",
	"RESERVATION_UPDATED",
	"RESERVATION_CANCELLED",
	"CHECK_IN",
	"CHECK_OUT",
}

// Client is the Agilysys booking, spa and subscription API.
type Client interface {
	GetReservation(ctx context.Context, confirmationNumber string) (json.RawMessage, error)
	GetSpaAppointments(ctx context.Context, confirmationNumber string) (json.RawMessage, error)
	RegisterWebhook(ctx context.Context, endpointURL string, eventTypes []string) (json.RawMessage, error)
}

type Credentials struct {
	Client       string `json:"Client"`
	ClientSecret string `json:"ClientSecret"`
	ProductID    string `json:"ProductId"`
	PropertyID   string `json:"PropertyId"`
	TenantID     string `json:"TenantId"`
}

// Session is one credentials grant. Either token field may be populated by the vendor.
type Session struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id,omitempty"`
}

type authResponse struct {
	BearerToken string `json:"BearerToken"`
	Token       string `json:"token"`
	SessionID   string `json:"SessionId"`
	SessionIDLc string `json:"sessionId"`
}

type subscription struct {
	EndpointURL string   `json:"endpointUrl"`
	EventTypes  []string `json:"eventTypes"`
}

type Endpoints struct {
	BookingAuthURL  string
	BookingURL      string
	SpaAuthURL      string
	SpaURL          string
	SubscriptionURL string
}

type clientImpl struct {
	remote      *remote.Client
	cache       cache.RedisCache
	endpoints   Endpoints
	credentials Credentials
	cacheTTL    int
}

func New(cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel, m *metrics.Metrics) Client {
	return NewClient(remote.Options{
		Service: constant.ServiceAgilysys,
		Timeout: time.Duration(cfg.Agilysys.TimeoutSeconds) * time.Second,
	}, Endpoints{
		BookingAuthURL:  cfg.Agilysys.BookingAuthURL,
		BookingURL:      cfg.Agilysys.BookingURL,
		SpaAuthURL:      cfg.Agilysys.SpaAuthURL,
		SpaURL:          cfg.Agilysys.SpaURL,
		SubscriptionURL: cfg.Agilysys.SubscriptionURL,
	}, Credentials{
		Client:       cfg.Agilysys.Credentials.Client,
		ClientSecret: cfg.Agilysys.Credentials.ClientSecret,
		ProductID:    cfg.Agilysys.Credentials.ProductID,
		PropertyID:   cfg.Agilysys.Credentials.PropertyID,
		TenantID:     cfg.Agilysys.Credentials.TenantID,
	}, redisCache, cfg.Agilysys.AuthCacheTTLSeconds, ot, m)
}

// NewClient builds the adapter. A nil cache or a zero cacheTTL authenticates on every call.
func NewClient(opts remote.Options, endpoints Endpoints, credentials Credentials, redisCache cache.RedisCache, cacheTTL int, ot otel.Otel, m *metrics.Metrics) Client {
	return &clientImpl{
		remote:      remote.New(opts, ot, m),
		cache:       redisCache,
		endpoints:   endpoints,
		credentials: credentials,
		cacheTTL:    cacheTTL,
	}
}

func (c *clientImpl) GetReservation(ctx context.Context, confirmationNumber string) (json.RawMessage, error) {
	endpoint := strings.TrimRight(c.endpoints.BookingURL, "/") + "/" + url.PathEscape(confirmationNumber)

	raw, err := c.authorized(ctx, c.endpoints.BookingAuthURL, constant.CacheKeyAgilysysBookingAuth, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agilysys reservation %s: %w", confirmationNumber, err)
	}

	return raw, nil
}

func (c *clientImpl) GetSpaAppointments(ctx context.Context, confirmationNumber string) (json.RawMessage, error) {
	endpoint := strings.TrimRight(c.endpoints.SpaURL, "/") + "/" + url.PathEscape(confirmationNumber)

	raw, err := c.authorized(ctx, c.endpoints.SpaAuthURL, constant.CacheKeyAgilysysSpaAuth, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agilysys spa appointments %s: %w", confirmationNumber, err)
	}

	return raw, nil
}

func (c *clientImpl) RegisterWebhook(ctx context.Context, endpointURL string, eventTypes []string) (json.RawMessage, error) {
	if len(eventTypes) == 0 {
		eventTypes = WebhookEvents
	}

	payload := subscription{EndpointURL: endpointURL, EventTypes: eventTypes}

	raw, err := c.authorized(ctx, c.endpoints.BookingAuthURL, constant.CacheKeyAgilysysBookingAuth, http.MethodPost, c.endpoints.SubscriptionURL, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to register agilysys webhook: %w", err)
	}

	return raw, nil
}

// authorized runs the call with a session, re-authenticating once when a cached session is rejected.
func (c *clientImpl) authorized(ctx context.Context, authURL, cacheKey, method, endpoint string, payload any) (json.RawMessage, error) {
	session, cached, err := c.session(ctx, authURL, cacheKey)
	if err != nil {
		return nil, err
	}

	resp, err := c.remote.Do(ctx, method, endpoint, payload, session.headers())
	if err != nil && cached && remote.StatusOf(err) == http.StatusUnauthorized {
		log.Warn().Str("cache_key", cacheKey).Msg("cached agilysys session rejected, re-authenticating")

		c.forget(ctx, cacheKey)

		session, err = c.authenticate(ctx, authURL, cacheKey)
		if err != nil {
			return nil, err
		}

		resp, err = c.remote.Do(ctx, method, endpoint, payload, session.headers())
	}

	if err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body), nil
}

func (c *clientImpl) session(ctx context.Context, authURL, cacheKey string) (Session, bool, error) {
	if c.cacheEnabled() {
		var session Session
		if err := c.cache.Get(ctx, cacheKey, &session); err == nil && session.Token != "" {
			return session, true, nil
		}
	}

	session, err := c.authenticate(ctx, authURL, cacheKey)

	return session, false, err
}

func (c *clientImpl) authenticate(ctx context.Context, authURL, cacheKey string) (Session, error) {
	resp, err := c.remote.Do(ctx, http.MethodPost, authURL, c.credentials, nil)
	if err != nil {
		log.Error().Err(err).Msg("agilysys auth failed")

		return Session{}, &remote.Error{Service: constant.ServiceAgilysys, Kind: remote.KindUnauthenticated, StatusCode: remote.StatusOf(err), Message: "credentials grant failed", Err: err}
	}

	var body authResponse
	if err = resp.Decode(&body); err != nil {
		log.Warn().Err(err).Msg("agilysys auth response is not JSON, falling back to headers")
	}

	session := Session{
		Token:     shared.FirstNonEmpty(body.BearerToken, body.Token, strings.TrimPrefix(resp.Header.Get(constant.RequestHeaderAuthorization), "Bearer ")),
		SessionID: shared.FirstNonEmpty(body.SessionID, body.SessionIDLc),
	}

	if session.Token == "" {
		return Session{}, &remote.Error{Service: constant.ServiceAgilysys, Kind: remote.KindUnauthenticated, StatusCode: resp.StatusCode, Message: "credentials grant failed", Err: ErrNoAccessToken}
	}

	if c.cacheEnabled() {
		if err = c.cache.Save(ctx, cacheKey, session, c.cacheTTL); err != nil {
			log.Warn().Err(err).Str("cache_key", cacheKey).Msg("failed to cache agilysys session")
		}
	}

	return session, nil
}

func (c *clientImpl) forget(ctx context.Context, cacheKey string) {
	if !c.cacheEnabled() {
		return
	}

	if err := c.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Str("cache_key", cacheKey).Msg("failed to drop cached agilysys session")
	}
}

func (c *clientImpl) cacheEnabled() bool {
	return c.cache != nil && c.cacheTTL > 0
}

func (s Session) headers() http.Header {
	header := http.Header{}
	header.Set(constant.RequestHeaderAuthorization, "Bearer "+s.Token)

	if s.SessionID != "" {
		header.Set(constant.RequestHeaderSessionID, s.SessionID)
	}

	return header
}
