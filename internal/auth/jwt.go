// Package auth issues and verifies HS256 JWT access and refresh tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/config"
	"github.com/SergeyBogomolovv/supermall/internal/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Tokens struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokens(cfg config.Auth) *Tokens {
	return &Tokens{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
}

func (t *Tokens) IssueAccessToken(u entities.User) (string, time.Time, error) {
	expiresAt := t.now().Add(t.accessTTL)
	token, err := t.sign(t.accessSecret, u, uuid.NewString(), expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// IssueRefreshToken returns the token and its random id. The id is stored on
// the user so a refresh token can be used only once.
func (t *Tokens) IssueRefreshToken(u entities.User) (string, string, error) {
	id := uuid.NewString()
	token, err := t.sign(t.refreshSecret, u, id, t.now().Add(t.refreshTTL))
	if err != nil {
		return "", "", err
	}
	return token, id, nil
}

func (t *Tokens) Verify(token string) (entities.Claims, error) {
	return t.parse(t.accessSecret, token)
}

func (t *Tokens) VerifyRefresh(token string) (entities.Claims, error) {
	return t.parse(t.refreshSecret, token)
}

func (t *Tokens) sign(secret []byte, u entities.User, id string, expiresAt time.Time) (string, error) {
	now := t.now()
	claims := tokenClaims{
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokens) parse(secret []byte, token string) (entities.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return entities.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return entities.Claims{
		UserID:  claims.Subject,
		Role:    entities.Role(claims.Role),
		TokenID: claims.ID,
	}, nil
}
