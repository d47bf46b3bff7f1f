package contextx

import (
	"context"
	"fmt"
	"time"
)

// Session describes the access token the current request was authenticated
// with. It is needed to revoke the token on sign-out.
type Session struct {
	TokenID   string
	ExpiresAt time.Time
}

type contextKeySession struct{}

func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, contextKeySession{}, session)
}

func SessionFromContext(ctx context.Context) (Session, error) {
	session, ok := ctx.Value(contextKeySession{}).(Session)
	if !ok {
		return Session{}, fmt.Errorf("session: %w", ErrNoValue)
	}

	return session, nil
}
