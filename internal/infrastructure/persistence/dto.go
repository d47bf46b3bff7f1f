package persistence

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"giftai/internal/domain/entity"
	"giftai/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// userSchema строка таблицы users.
type userSchema struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (s userSchema) toDomain() *entity.User {
	return &entity.User{
		ID:           s.ID,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		CreatedAt:    s.CreatedAt,
	}
}

// profileSchema строка таблицы user_profiles.
type profileSchema struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	FullName  *string   `db:"full_name"`
	AvatarURL *string   `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s profileSchema) toDomain() *entity.Profile {
	return &entity.Profile{
		ID:        s.ID,
		Email:     s.Email,
		FullName:  s.FullName,
		AvatarURL: s.AvatarURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// searchSchema строка таблицы gift_searches.
type searchSchema struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Occasion    string    `db:"occasion"`
	Age         int       `db:"age"`
	Gender      string    `db:"gender"`
	Personality string    `db:"personality"`
	Budget      float64   `db:"budget"`
	Geography   string    `db:"geography"`
	CreatedAt   time.Time `db:"created_at"`
}

func newSearchSchema(s *entity.GiftSearch) searchSchema {
	return searchSchema{
		ID:          s.ID,
		UserID:      s.UserID,
		Occasion:    s.Criteria.Occasion,
		Age:         s.Criteria.Age,
		Gender:      s.Criteria.Gender,
		Personality: s.Criteria.Personality,
		Budget:      s.Criteria.Budget,
		Geography:   s.Criteria.Geography,
		CreatedAt:   s.CreatedAt,
	}
}

func (s searchSchema) toDomain(suggestions []entity.GiftSuggestion) entity.GiftSearch {
	return entity.GiftSearch{
		ID:     s.ID,
		UserID: s.UserID,
		Criteria: value.Criteria{
			Occasion:    s.Occasion,
			Age:         s.Age,
			Gender:      s.Gender,
			Personality: s.Personality,
			Budget:      s.Budget,
			Geography:   s.Geography,
		},
		CreatedAt:   s.CreatedAt,
		Suggestions: suggestions,
	}
}

// shoppingLinkSchema элемент jsonb-массива shopping_links.
type shoppingLinkSchema struct {
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	PriceRange string `json:"price_range"`
}

// suggestionSchema строка таблицы gift_suggestions.
type suggestionSchema struct {
	ID            uuid.UUID `db:"id"`
	SearchID      uuid.UUID `db:"search_id"`
	Position      int       `db:"position"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Reason        string    `db:"reason"`
	ShoppingLinks []byte    `db:"shopping_links"`
	IsFavorited   bool      `db:"is_favorited"`
	CreatedAt     time.Time `db:"created_at"`
}

func newSuggestionSchema(s entity.GiftSuggestion, position int) (suggestionSchema, error) {
	links, err := json.Marshal(lo.Map(s.Suggestion.ShoppingLinks, func(l value.ShoppingLink, _ int) shoppingLinkSchema {
		return shoppingLinkSchema{Platform: l.Platform, URL: l.URL, PriceRange: l.PriceRange}
	}))
	if err != nil {
		return suggestionSchema{}, err
	}

	return suggestionSchema{
		ID:            s.ID,
		SearchID:      s.SearchID,
		Position:      position,
		Name:          s.Suggestion.Name,
		Description:   s.Suggestion.Description,
		Reason:        s.Suggestion.Reason,
		ShoppingLinks: links,
		IsFavorited:   s.IsFavorited,
		CreatedAt:     s.CreatedAt,
	}, nil
}

func (s suggestionSchema) toDomain() (entity.GiftSuggestion, error) {
	var links []shoppingLinkSchema
	if len(s.ShoppingLinks) > 0 {
		if err := json.Unmarshal(s.ShoppingLinks, &links); err != nil {
			return entity.GiftSuggestion{}, err
		}
	}

	return entity.GiftSuggestion{
		ID:       s.ID,
		SearchID: s.SearchID,
		Suggestion: value.Suggestion{
			Name:        s.Name,
			Description: s.Description,
			Reason:      s.Reason,
			ShoppingLinks: lo.Map(links, func(l shoppingLinkSchema, _ int) value.ShoppingLink {
				return value.ShoppingLink{Platform: l.Platform, URL: l.URL, PriceRange: l.PriceRange}
			}),
		},
		IsFavorited: s.IsFavorited,
		CreatedAt:   s.CreatedAt,
	}, nil
}

func suggestionsToDomain(schemas []suggestionSchema) ([]entity.GiftSuggestion, error) {
	out := make([]entity.GiftSuggestion, 0, len(schemas))

	for _, s := range schemas {
		suggestion, err := s.toDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, suggestion)
	}

	return out, nil
}
