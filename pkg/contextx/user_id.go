package contextx

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserID identifies the authenticated account of the current request.
type UserID uuid.UUID

type contextKeyUserID struct{}

func (u UserID) String() string {
	return uuid.UUID(u).String()
}

func (u UserID) UUID() uuid.UUID {
	return uuid.UUID(u)
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	userID, ok := ctx.Value(contextKeyUserID{}).(UserID)
	if !ok {
		return UserID(uuid.Nil), fmt.Errorf("user id: %w", ErrNoValue)
	}

	return userID, nil
}
