// Package token issues and verifies HS256 access tokens. Revoked token ids are
// kept in memory until the token would have expired anyway.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"

	"giftai/internal/domain"
	"giftai/internal/domain/value"
	"giftai/pkg/errcodes"
)

const (
	issuer = "giftai"

	revokedCleanupInterval = 10 * time.Minute
)

type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

type Manager struct {
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
	revoked *cache.Cache
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: cache.New(ttl, revokedCleanupInterval),
	}
}

// WithClock подменяет источник времени.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) Issue(userID uuid.UUID, email string) (value.AccessToken, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	id := xid.New().String()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return value.AccessToken{}, fmt.Errorf("token.SignedString: %w", err)
	}

	return value.AccessToken{
		Token:     signed,
		ID:        id,
		ExpiresAt: expiresAt,
	}, nil
}

func (m *Manager) Parse(raw string) (value.TokenClaims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return value.TokenClaims{}, domain.WrapError(err, errcodes.AccessTokenExpired, "Your session has expired. Please sign in again.")
	case err != nil:
		return value.TokenClaims{}, domain.WrapError(err, errcodes.AccessTokenInvalid, "Invalid access token.")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return value.TokenClaims{}, domain.WrapError(err, errcodes.AccessTokenInvalid, "Invalid access token.")
	}

	if _, ok := m.revoked.Get(claims.ID); ok {
		return value.TokenClaims{}, domain.NewError(errcodes.AccessTokenRevoked, "You have been signed out. Please sign in again.")
	}

	return value.TokenClaims{
		ID:        claims.ID,
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke запоминает id токена до момента его истечения.
func (m *Manager) Revoke(id string, expiresAt time.Time) {
	ttl := expiresAt.Sub(m.now())
	if ttl <= 0 {
		return
	}

	m.revoked.Set(id, struct{}{}, ttl)
}
