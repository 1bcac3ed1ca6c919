package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itbasis/go-clock"

	"github.com/jazelams/soccer-app/model"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
	TeamID   *int32 `json:"teamId,omitempty"`
}

// TokenService issues and verifies the bearer tokens the API uses for
// sessions. HS256 with a shared secret; the principal rides in the claims.
type TokenService interface {
	Generate(u *model.User) (string, error)
	Validate(token string) (*Principal, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewTokenService(secret string, ttl time.Duration, clock clock.Clock) TokenService {
	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

func (s *tokenService) Generate(u *model.User) (string, error) {
	now := s.clock.Now()
	c := &claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: u.Username,
		Role:     string(u.Role),
		TeamID:   u.TeamID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Validate(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	role, err := model.ParseRole(c.Role)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var userID int32
	if _, err := fmt.Sscanf(c.Subject, "%d", &userID); err != nil {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID:   userID,
		Username: c.Username,
		Role:     role,
		TeamID:   c.TeamID,
	}, nil
}
