package dto_test

import (
	"net/url"
	"testing"
	"time"

	"pmsbridge/internal/domains/auth/model/dto"
	"pmsbridge/internal/domains/token/model"

	"github.com/stretchr/testify/assert"
)

func TestCallbackRequestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  dto.CallbackRequest
	}{
		{
			name:  "code and state",
			query: url.Values{"code": {" abc "}, "state": {"signed"}},
			want:  dto.CallbackRequest{Code: "abc", State: "signed"},
		},
		{
			name:  "declined grant",
			query: url.Values{"error": {"access_denied"}, "state": {"signed"}},
			want:  dto.CallbackRequest{State: "signed", Error: "access_denied"},
		},
		{
			name:  "empty query",
			query: url.Values{},
			want:  dto.CallbackRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.CallbackRequestFromQuery(tt.query))
		})
	}
}

func TestCallbackResponse_FromToken(t *testing.T) {
	expires := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var res dto.CallbackResponse
	res.FromToken(model.AuthToken{AccessToken: "tok", ExpiresAt: expires.UnixMilli()})

	assert.NotEmpty(t, res.Message)
	assert.True(t, expires.Equal(res.ExpiresAt))
}
