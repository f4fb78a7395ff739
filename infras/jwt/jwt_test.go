package jwt_test

import (
	"testing"
	"time"

	"pmsbridge/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSigner(t *testing.T) {
	signer := jwt.NewStateSigner("secret", "pms-bridge", 10*time.Minute)

	tests := []struct {
		name    string
		state   func() string
		wantErr error
	}{
		{
			name: "fresh state verifies",
			state: func() string {
				s, err := signer.Sign(time.Now())
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "expired state",
			state: func() string {
				s, err := signer.Sign(time.Now().Add(-time.Hour))
				require.NoError(t, err)
				return s
			},
			wantErr: jwt.ErrExpiredState,
		},
		{
			name: "state signed with another secret",
			state: func() string {
				s, err := jwt.NewStateSigner("other", "pms-bridge", time.Minute).Sign(time.Now())
				require.NoError(t, err)
				return s
			},
			wantErr: jwt.ErrInvalidState,
		},
		{
			name:    "garbage",
			state:   func() string { return "not-a-jwt" },
			wantErr: jwt.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := signer.Verify(tt.state())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, claims.Nonce)
		})
	}
}
