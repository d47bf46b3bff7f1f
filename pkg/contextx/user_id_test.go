package contextx_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"giftai/pkg/contextx"
)

func TestUserID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testUserIDNotEmpty := contextx.UserID(uuid.MustParse("6f1c7c1e-6d8a-4c55-9a4c-3f0c1f4a9b2e"))

	userID, err := contextx.UserIDFromContext(ctx)
	rq.Equal(contextx.UserID(uuid.Nil), userID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "user id: no value in context")

	ctx = contextx.WithUserID(ctx, testUserIDNotEmpty)

	userID, err = contextx.UserIDFromContext(ctx)
	rq.Equal(testUserIDNotEmpty, userID)
	rq.Equal("6f1c7c1e-6d8a-4c55-9a4c-3f0c1f4a9b2e", userID.String())
	rq.NoError(err)
}

func TestSession(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	_, err := contextx.SessionFromContext(ctx)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "session: no value in context")

	ctx = contextx.WithSession(ctx, contextx.Session{TokenID: "jti-1"})

	session, err := contextx.SessionFromContext(ctx)
	rq.NoError(err)
	rq.Equal("jti-1", session.TokenID)
}
