package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"giftai/internal/domain/value"
	"giftai/pkg/contextx"
	"giftai/pkg/httpx/reply"
	"giftai/pkg/logx"
)

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

//go:generate moq -rm -out authenticator_mock.gen.go . authenticator
type authenticator interface {
	Authenticate(ctx context.Context, raw string) (value.TokenClaims, error)
}

// requireAuth пропускает только запросы с действующим токеном.
func requireAuth(a authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, err := a.Authenticate(ctx, bearerToken(r))
			if err != nil {
				reply.Error(ctx, w, fmt.Errorf("authenticator.Authenticate: %w", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(ctx, claims)))
		})
	}
}

// optionalAuth определяет пользователя, если токен передан. Недействительный
// токен не мешает обработать запрос анонимно.
func optionalAuth(a authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := bearerToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := a.Authenticate(ctx, raw)
			if err != nil {
				logger(ctx).Warn("token ignored, serving anonymously", logx.Error(err))
				next.ServeHTTP(w, r)

				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(ctx, claims)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(headerAuthorization)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

func withClaims(ctx context.Context, claims value.TokenClaims) context.Context {
	userID := contextx.UserID(claims.UserID)

	ctx = contextx.WithUserID(ctx, userID)
	ctx = contextx.WithSession(ctx, contextx.Session{
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt,
	})

	return contextx.WithLogger(ctx, logger(ctx).With(logx.Stringer(logx.FieldUserID, userID)))
}

// claimsFromContext восстанавливает данные сессии, положенные requireAuth.
func claimsFromContext(ctx context.Context) (value.TokenClaims, error) {
	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return value.TokenClaims{}, fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	session, err := contextx.SessionFromContext(ctx)
	if err != nil {
		return value.TokenClaims{}, fmt.Errorf("contextx.SessionFromContext: %w", err)
	}

	return value.TokenClaims{
		ID:        session.TokenID,
		UserID:    userID.UUID(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}
