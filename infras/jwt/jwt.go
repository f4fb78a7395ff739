package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"pmsbridge/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidState = errors.New("invalid oauth state")
	ErrExpiredState = errors.New("oauth state has expired")
)

const stateAudience = "akia-oauth"

// StateClaims are carried by the OAuth state parameter between login and callback.
type StateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// StateSigner issues and verifies the short-lived OAuth state.
type StateSigner interface {
	Sign(now time.Time) (string, error)
	Verify(state string) (*StateClaims, error)
}

type stateSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func New(cfg *config.Config) StateSigner {
	return NewStateSigner(cfg.Akia.StateSecret, cfg.App.Name, time.Duration(cfg.Akia.StateTTLMinutes)*time.Minute)
}

func NewStateSigner(secret, issuer string, ttl time.Duration) StateSigner {
	return &stateSigner{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

func (s *stateSigner) Sign(now time.Time) (string, error) {
	nonce := uuid.NewString()

	claims := StateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{stateAudience},
			ID:        nonce,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign state: %w", err)
	}

	return signed, nil
}

func (s *stateSigner) Verify(state string) (*StateClaims, error) {
	token, err := jwt.ParseWithClaims(state, &StateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	}, jwt.WithAudience(stateAudience), jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredState
		}

		return nil, ErrInvalidState
	}

	claims, ok := token.Claims.(*StateClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidState
	}

	return claims, nil
}
