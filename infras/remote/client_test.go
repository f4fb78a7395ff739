package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel/mocks"
	"pmsbridge/infras/remote"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearer(token string) remote.HeaderProvider {
	return func(context.Context) (http.Header, error) {
		h := http.Header{}
		h.Set("Authorization", "Bearer "+token)
		return h, nil
	}
}

func TestInvokeSuccess(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42"}`))
	}))
	defer srv.Close()

	m := metrics.New()
	client := remote.New(remote.Options{Service: "akia", BaseURL: srv.URL + "/", Headers: bearer("abc")}, mocks.NewOtel(), m)

	var out struct {
		ID string `json:"id"`
	}
	err := client.Invoke(context.Background(), http.MethodPost, "v3/customers", map[string]string{"email": "a@b.c"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "42", out.ID)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "/v3/customers", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "a@b.c", gotBody["email"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DownstreamCalls.WithLabelValues("akia", "success")))
}

func TestInvokeFailures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		headers    remote.HeaderProvider
		payload    any
		closed     bool
		wantKind   remote.Kind
		wantStatus int
		notFound   bool
	}{
		{
			name: "remote non 2xx keeps status and body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"message":"email taken"}`))
			},
			wantKind:   remote.KindRemote,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantKind:   remote.KindRemote,
			wantStatus: http.StatusNotFound,
			notFound:   true,
		},
		{
			name:     "transport failure",
			handler:  func(http.ResponseWriter, *http.Request) {},
			closed:   true,
			wantKind: remote.KindTransport,
		},
		{
			name:     "request construction failure",
			handler:  func(http.ResponseWriter, *http.Request) {},
			payload:  map[string]any{"bad": make(chan int)},
			wantKind: remote.KindRequest,
		},
		{
			name:    "credentials unavailable",
			handler: func(http.ResponseWriter, *http.Request) { t.Error("call must not be issued") },
			headers: func(context.Context) (http.Header, error) {
				return nil, errors.New("not authenticated")
			},
			wantKind: remote.KindUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			if tt.closed {
				srv.Close()
			} else {
				defer srv.Close()
			}

			client := remote.New(remote.Options{Service: "hubspot", BaseURL: srv.URL, Headers: tt.headers}, mocks.NewOtel(), nil)

			err := client.Invoke(context.Background(), http.MethodPost, "/deals", tt.payload, nil)

			require.Error(t, err)
			var remoteErr *remote.Error
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.wantKind, remoteErr.Kind)
			assert.Equal(t, tt.wantKind, remote.KindOf(err))
			assert.Equal(t, tt.wantStatus, remoteErr.StatusCode)
			assert.Equal(t, tt.notFound, remote.IsNotFound(err))
			assert.Equal(t, "hubspot", remoteErr.Service)
		})
	}
}

func TestRemoteErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid property","category":"VALIDATION_ERROR"}`))
	}))
	defer srv.Close()

	client := remote.New(remote.Options{Service: "hubspot", BaseURL: srv.URL}, mocks.NewOtel(), nil)

	err := client.Invoke(context.Background(), http.MethodPatch, "/deals/1", map[string]any{}, nil)

	var remoteErr *remote.Error
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "invalid property", remoteErr.Message)
	assert.Contains(t, remoteErr.Body, "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "400")
}

func TestDoAbsoluteURLAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer issued")
		_, _ = w.Write([]byte(r.Header.Get("SessionId")))
	}))
	defer srv.Close()

	client := remote.New(remote.Options{Service: "agilysys", BaseURL: "http://unused.invalid"}, mocks.NewOtel(), nil)

	extra := http.Header{}
	extra.Set("SessionId", "s-1")
	resp, err := client.Do(context.Background(), http.MethodGet, srv.URL+"/auth", nil, extra)

	require.NoError(t, err)
	assert.Equal(t, "s-1", string(resp.Body))
	assert.Equal(t, "Bearer issued", resp.Header.Get("Authorization"))
}
