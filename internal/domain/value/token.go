package value

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken выданный токен доступа.
type AccessToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// TokenClaims проверенное содержимое токена.
type TokenClaims struct {
	ID        string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}
