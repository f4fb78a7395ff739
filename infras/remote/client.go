package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel"
	"pmsbridge/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout  = 20 * time.Second
	maxErrorBodyLen = 4096

	otelAttrMethod   = "http.method"
	otelAttrEndpoint = "http.endpoint"
	otelAttrStatus   = "http.status_code"
)

// HeaderProvider returns the per-call authentication headers. An error aborts the call as KindUnauthenticated.
type HeaderProvider func(ctx context.Context) (http.Header, error)

// Response is a successful vendor answer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if out == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}

	return json.Unmarshal(r.Body, out)
}

type Options struct {
	Service    string
	BaseURL    string
	Timeout    time.Duration
	Headers    HeaderProvider
	HTTPClient *http.Client
}

// Client issues JSON calls against one vendor.
type Client struct {
	service    string
	baseURL    string
	headers    HeaderProvider
	httpClient *http.Client
	otel       otel.Otel
	metrics    *metrics.Metrics
}

func New(opts Options, ot otel.Otel, m *metrics.Metrics) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		service:    opts.Service,
		baseURL:    strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		headers:    opts.Headers,
		httpClient: httpClient,
		otel:       ot,
		metrics:    m,
	}
}

func (c *Client) Service() string {
	return c.service
}

// Invoke sends payload as JSON and decodes a 2xx answer into out. Every failure is an *Error.
func (c *Client) Invoke(ctx context.Context, method, endpoint string, payload, out any) error {
	resp, err := c.Do(ctx, method, endpoint, payload, nil)
	if err != nil {
		return err
	}

	if err = resp.Decode(out); err != nil {
		return &Error{Service: c.service, Kind: KindRemote, StatusCode: resp.StatusCode, Body: truncate(resp.Body), Message: "malformed response body", Err: err}
	}

	return nil
}

// Do sends the call with extra headers layered over the provider's and returns the raw 2xx response.
func (c *Client) Do(ctx context.Context, method, endpoint string, payload any, extra http.Header) (resp *Response, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+c.service)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	url := c.resolve(endpoint)

	scope.SetAttributes(map[string]any{
		otelAttrMethod:   method,
		otelAttrEndpoint: endpoint,
	})

	defer func() {
		if err != nil {
			c.metrics.ObserveCall(c.service, constant.OutcomeFailure)
		} else {
			c.metrics.ObserveCall(c.service, constant.OutcomeSuccess)
		}
	}()

	headers := http.Header{}
	if c.headers != nil {
		provided, headerErr := c.headers(ctx)
		if headerErr != nil {
			return nil, &Error{Service: c.service, Kind: KindUnauthenticated, Message: "could not obtain credentials", Err: headerErr}
		}

		for key, values := range provided {
			headers[key] = values
		}
	}

	for key, values := range extra {
		headers[key] = values
	}

	var body io.Reader
	if payload != nil {
		encoded, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return nil, &Error{Service: c.service, Kind: KindRequest, Message: "could not encode payload", Err: marshalErr}
		}

		body = bytes.NewReader(encoded)
		if headers.Get(constant.RequestHeaderContentType) == "" {
			headers.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &Error{Service: c.service, Kind: KindRequest, Message: "could not build request", Err: err}
	}

	req.Header = headers
	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("service", c.service).Str("method", method).Str("endpoint", endpoint).Msg("no response from downstream service")

		return nil, &Error{Service: c.service, Kind: KindTransport, Message: "no response received", Err: err}
	}
	defer httpResp.Body.Close()

	scope.SetAttribute(otelAttrStatus, httpResp.StatusCode)

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &Error{Service: c.service, Kind: KindTransport, StatusCode: httpResp.StatusCode, Message: "could not read response", Err: err}
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		remoteErr := &Error{
			Service:    c.service,
			Kind:       KindRemote,
			StatusCode: httpResp.StatusCode,
			Body:       truncate(respBody),
			Message:    remoteMessage(respBody, httpResp.Status),
		}

		log.Error().
			Str("service", c.service).
			Str("method", method).
			Str("endpoint", endpoint).
			Int("status", httpResp.StatusCode).
			Str("body", remoteErr.Body).
			Msg("downstream service rejected the call")

		return nil, remoteErr
	}

	return &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: respBody}, nil
}

func (c *Client) resolve(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}

	if endpoint == "" {
		return c.baseURL
	}

	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	return c.baseURL + endpoint
}

func remoteMessage(body []byte, status string) string {
	var parsed map[string]any
	if json.Unmarshal(body, &parsed) == nil {
		for _, key := range []string{"message", "error_description", "error"} {
			if msg, ok := parsed[key].(string); ok && strings.TrimSpace(msg) != "" {
				return msg
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return fmt.Sprintf("%s: %s", status, truncate([]byte(text)))
	}

	return status
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyLen {
		return string(body[:maxErrorBodyLen])
	}

	return string(body)
}
