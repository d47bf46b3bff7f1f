// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// GiftCriteria Описание получателя подарка
type GiftCriteria struct {
	Occasion    string  `json:"occasion"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	Personality string  `json:"personality"`
	Budget      float64 `json:"budget"`
	Geography   string  `json:"geography"`
}

// ShoppingLink Ссылка на поиск подарка в магазине
type ShoppingLink struct {
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	PriceRange string `json:"price_range"`
}

// GiftSuggestion Идея подарка
type GiftSuggestion struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Reason        string         `json:"reason"`
	ShoppingLinks []ShoppingLink `json:"shopping_links"`
}

// ChatMessage Сообщение чата уточнения
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// RefineGiftRequest Запрос на уточнение подборки
type RefineGiftRequest struct {
	InitialCriteria    *GiftCriteria    `json:"initialCriteria"`
	InitialSuggestions []GiftSuggestion `json:"initialSuggestions"`
	ChatHistory        []ChatMessage    `json:"chatHistory"`

	// SearchID Сохранённый поиск, к которому добавляется новая подборка
	SearchID *string `json:"searchId,omitempty"`
}

// Currency Валюта местоположения
type Currency struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
	Name   string `json:"name"`
}

// LocaleResponse Результат определения валюты по местоположению
type LocaleResponse struct {
	Currency         Currency  `json:"currency"`
	Country          string    `json:"country,omitempty"`
	CountryName      string    `json:"countryName,omitempty"`
	DisplayName      string    `json:"displayName"`
	SuggestedBudgets []float64 `json:"suggestedBudgets"`
	FormattedBudgets []string  `json:"formattedBudgets"`
}

// SignUpRequest Регистрация
type SignUpRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
}

// SignInRequest Вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest Смена пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfileRequest Частичное обновление профиля
type UpdateProfileRequest struct {
	FullName  *string `json:"fullName,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// UserProfile Профиль пользователя
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session Сессия пользователя
type Session struct {
	AccessToken string      `json:"accessToken,omitempty"`
	TokenType   string      `json:"tokenType,omitempty"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	User        UserProfile `json:"user"`
}

// RecordSearchRequest Сохранение поиска вместе с первой подборкой
type RecordSearchRequest struct {
	Criteria    GiftCriteria     `json:"criteria"`
	Suggestions []GiftSuggestion `json:"suggestions" validate:"required"`
}

// AddSuggestionsRequest Добавление подборки к поиску
type AddSuggestionsRequest struct {
	Suggestions []GiftSuggestion `json:"suggestions" validate:"required"`
}

// SetFavoriteRequest Установка отметки избранного
type SetFavoriteRequest struct {
	IsFavorited *bool `json:"isFavorited" validate:"required"`
}

// SavedSuggestion Сохранённая идея подарка
type SavedSuggestion struct {
	ID            string         `json:"id"`
	SearchID      string         `json:"search_id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Reason        string         `json:"reason"`
	ShoppingLinks []ShoppingLink `json:"shopping_links"`
	IsFavorited   bool           `json:"is_favorited"`
	CreatedAt     time.Time      `json:"created_at"`
}

// GiftSearch Сохранённый поиск
type GiftSearch struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Occasion    string            `json:"occasion"`
	Age         int               `json:"age"`
	Gender      string            `json:"gender"`
	Personality string            `json:"personality"`
	Budget      float64           `json:"budget"`
	Geography   string            `json:"geography"`
	CreatedAt   time.Time         `json:"created_at"`
	Suggestions []SavedSuggestion `json:"gift_suggestions"`
}
