package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileUpdate частичное обновление профиля, nil поля не меняются.
type ProfileUpdate struct {
	FullName  *string
	AvatarURL *string
}

// Session выдаётся при входе и регистрации.
type Session struct {
	AccessToken string
	TokenID     string
	ExpiresAt   time.Time
	User        User
	Profile     Profile
}
