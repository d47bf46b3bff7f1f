package entity

import (
	"time"

	"github.com/google/uuid"

	"giftai/internal/domain/value"
)

// GiftSearch сохранённый запрос пользователя. После создания не меняется.
type GiftSearch struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Criteria    value.Criteria
	CreatedAt   time.Time
	Suggestions []GiftSuggestion
}

// GiftSuggestion всегда принадлежит ровно одному GiftSearch. Изменяемое поле
// только IsFavorited.
type GiftSuggestion struct {
	ID          uuid.UUID
	SearchID    uuid.UUID
	Suggestion  value.Suggestion
	IsFavorited bool
	CreatedAt   time.Time
}
