package oauth

//go:generate go run go.uber.org/mock/mockgen -source=./oauth.go -destination=./mocks/oauth_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pmsbridge/config"
	"pmsbridge/infras/otel"
	"pmsbridge/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const defaultTimeout = 20 * time.Second

// Grant is a token answer from the Akia token endpoint.
type Grant struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is zero when the provider did not say.
	ExpiresIn time.Duration
}

// Client speaks the authorization code and refresh token grants against Akia.
type Client interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Grant, error)
	Refresh(ctx context.Context, refreshToken string) (*Grant, error)
}

type clientImpl struct {
	config     *oauth2.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := defaultTimeout
	if cfg.Akia.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Akia.TimeoutSeconds) * time.Second
	}

	return NewClient(&oauth2.Config{
		ClientID:     cfg.Akia.ClientID,
		ClientSecret: cfg.Akia.ClientSecret,
		RedirectURL:  cfg.Akia.RedirectURI,
		// Akia expects one comma separated scope parameter.
		Scopes: []string{strings.Join(cfg.Akia.Scopes, ",")},
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.Akia.AuthorizeURL,
			TokenURL:  strings.TrimRight(cfg.Akia.BaseURL, "/") + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}, &http.Client{Timeout: timeout}, ot)
}

func NewClient(config *oauth2.Config, httpClient *http.Client, ot otel.Otel) Client {
	return &clientImpl{
		config:     config,
		httpClient: httpClient,
		otel:       ot,
	}
}

func (c *clientImpl) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state)
}

func (c *clientImpl) Exchange(ctx context.Context, code string) (grant *Grant, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".oauth.Exchange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tok, err := c.config.Exchange(c.withClient(ctx), code)
	if err != nil {
		log.Error().Err(err).Msg("failed to exchange authorization code")

		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return grantFrom(tok), nil
}

func (c *clientImpl) Refresh(ctx context.Context, refreshToken string) (grant *Grant, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".oauth.Refresh")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// An expired token with only the refresh token set forces the refresh_token grant.
	source := c.config.TokenSource(c.withClient(ctx), &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Unix(1, 0),
	})

	tok, err := source.Token()
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh access token")

		return nil, fmt.Errorf("failed to refresh access token: %w", err)
	}

	return grantFrom(tok), nil
}

func (c *clientImpl) withClient(ctx context.Context) context.Context {
	if c.httpClient == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

func grantFrom(tok *oauth2.Token) *Grant {
	grant := &Grant{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}

	if seconds := expiresInSeconds(tok.Extra("expires_in")); seconds > 0 {
		grant.ExpiresIn = time.Duration(seconds) * time.Second
	} else if !tok.Expiry.IsZero() {
		grant.ExpiresIn = time.Until(tok.Expiry).Round(time.Second)
	}

	return grant
}

func expiresInSeconds(raw any) int64 {
	switch v := raw.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}

		return n
	}

	return 0
}
