package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"giftai/internal/domain"
	"giftai/internal/infrastructure/token"
	"giftai/pkg/errcodes"
)

func TestIssueAndParse(t *testing.T) {
	rq := require.New(t)

	m := token.NewManager("secret", time.Hour)
	userID := uuid.New()

	issued, err := m.Issue(userID, "ann@example.com")
	rq.NoError(err)
	rq.NotEmpty(issued.Token)
	rq.NotEmpty(issued.ID)

	parsed, err := m.Parse(issued.Token)
	rq.NoError(err)
	rq.Equal(userID, parsed.UserID)
	rq.Equal("ann@example.com", parsed.Email)
	rq.Equal(issued.ID, parsed.ID)
	rq.WithinDuration(issued.ExpiresAt, parsed.ExpiresAt, time.Second)
}

func TestParseRejects(t *testing.T) {
	userID := uuid.New()
	base := time.Now()

	testCases := []struct {
		name  string
		token func(rq *require.Assertions) string
		code  string
	}{
		{
			name: "garbage",
			token: func(*require.Assertions) string {
				return "not-a-token"
			},
			code: string(errcodes.AccessTokenInvalid),
		},
		{
			name: "other secret",
			token: func(rq *require.Assertions) string {
				issued, err := token.NewManager("other", time.Hour).Issue(userID, "a@b.c")
				rq.NoError(err)

				return issued.Token
			},
			code: string(errcodes.AccessTokenInvalid),
		},
		{
			name: "expired",
			token: func(rq *require.Assertions) string {
				issued, err := token.NewManager("secret", time.Hour).
					WithClock(func() time.Time { return base.Add(-2 * time.Hour) }).
					Issue(userID, "a@b.c")
				rq.NoError(err)

				return issued.Token
			},
			code: string(errcodes.AccessTokenExpired),
		},
		{
			name: "none algorithm",
			token: func(rq *require.Assertions) string {
				claims := jwt.RegisteredClaims{
					Subject:   userID.String(),
					Issuer:    "giftai",
					ExpiresAt: jwt.NewNumericDate(base.Add(time.Hour)),
				}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				rq.NoError(err)

				return signed
			},
			code: string(errcodes.AccessTokenInvalid),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := token.NewManager("secret", time.Hour).Parse(tc.token(rq))
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
		})
	}
}

func TestRevoke(t *testing.T) {
	rq := require.New(t)

	m := token.NewManager("secret", time.Hour)

	issued, err := m.Issue(uuid.New(), "a@b.c")
	rq.NoError(err)

	other, err := m.Issue(uuid.New(), "c@d.e")
	rq.NoError(err)

	m.Revoke(issued.ID, issued.ExpiresAt)

	_, err = m.Parse(issued.Token)
	rq.True(domain.HasCode(err, errcodes.AccessTokenRevoked))

	_, err = m.Parse(other.Token)
	rq.NoError(err)
}
