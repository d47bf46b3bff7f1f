package server

import (
	"github.com/samber/lo"

	"giftai/internal/domain/entity"
	"giftai/internal/domain/service/locale"
	"giftai/internal/domain/value"
	"giftai/pkg/lox"
	"giftai/pkg/rest"
)

func newDomainCriteria(c rest.GiftCriteria) value.Criteria {
	return value.Criteria{
		Occasion:    c.Occasion,
		Age:         c.Age,
		Gender:      c.Gender,
		Personality: c.Personality,
		Budget:      c.Budget,
		Geography:   c.Geography,
	}
}

// newDomainSuggestions сохраняет различие между отсутствующим и пустым списком.
func newDomainSuggestions(suggestions []rest.GiftSuggestion) []value.Suggestion {
	if suggestions == nil {
		return nil
	}

	return lox.Map(suggestions, func(s rest.GiftSuggestion) value.Suggestion {
		return value.Suggestion{
			Name:        s.Name,
			Description: s.Description,
			Reason:      s.Reason,
			ShoppingLinks: lox.Map(s.ShoppingLinks, func(l rest.ShoppingLink) value.ShoppingLink {
				return value.ShoppingLink{Platform: l.Platform, URL: l.URL, PriceRange: l.PriceRange}
			}),
		}
	})
}

func newDomainRefinement(request rest.RefineGiftRequest) value.Refinement {
	refinement := value.Refinement{
		Suggestions: newDomainSuggestions(request.InitialSuggestions),
	}

	if request.InitialCriteria != nil {
		refinement.Criteria = newDomainCriteria(*request.InitialCriteria)
	}

	if request.ChatHistory != nil {
		refinement.History = lox.Map(request.ChatHistory, func(m rest.ChatMessage) value.ChatMessage {
			return value.ChatMessage{
				Role:      value.ChatRole(m.Role),
				Content:   m.Content,
				Timestamp: m.Timestamp,
			}
		})
	}

	return refinement
}

func newRESTSuggestion(s value.Suggestion) rest.GiftSuggestion {
	return rest.GiftSuggestion{
		Name:          s.Name,
		Description:   s.Description,
		Reason:        s.Reason,
		ShoppingLinks: lox.Map(s.ShoppingLinks, newRESTShoppingLink),
	}
}

func newRESTShoppingLink(l value.ShoppingLink) rest.ShoppingLink {
	return rest.ShoppingLink{
		Platform:   l.Platform,
		URL:        l.URL,
		PriceRange: l.PriceRange,
	}
}

func newRESTSavedSuggestion(s entity.GiftSuggestion) rest.SavedSuggestion {
	return rest.SavedSuggestion{
		ID:            s.ID.String(),
		SearchID:      s.SearchID.String(),
		Name:          s.Suggestion.Name,
		Description:   s.Suggestion.Description,
		Reason:        s.Suggestion.Reason,
		ShoppingLinks: lox.Map(s.Suggestion.ShoppingLinks, newRESTShoppingLink),
		IsFavorited:   s.IsFavorited,
		CreatedAt:     s.CreatedAt,
	}
}

func newRESTSearch(s entity.GiftSearch) rest.GiftSearch {
	return rest.GiftSearch{
		ID:          s.ID.String(),
		UserID:      s.UserID.String(),
		Occasion:    s.Criteria.Occasion,
		Age:         s.Criteria.Age,
		Gender:      s.Criteria.Gender,
		Personality: s.Criteria.Personality,
		Budget:      s.Criteria.Budget,
		Geography:   s.Criteria.Geography,
		CreatedAt:   s.CreatedAt,
		Suggestions: lox.Map(s.Suggestions, newRESTSavedSuggestion),
	}
}

func newRESTProfile(p entity.Profile) rest.UserProfile {
	return rest.UserProfile{
		ID:        p.ID.String(),
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newRESTSession(s entity.Session) rest.Session {
	session := rest.Session{
		AccessToken: s.AccessToken,
		ExpiresAt:   s.ExpiresAt,
		User:        newRESTProfile(s.Profile),
	}

	if s.AccessToken != "" {
		session.TokenType = "Bearer"
	}

	return session
}

func newRESTLocale(l value.Locale) rest.LocaleResponse {
	budgets := locale.SuggestedBudgets(l.Currency.Code)

	return rest.LocaleResponse{
		Currency: rest.Currency{
			Symbol: l.Currency.Symbol,
			Code:   l.Currency.Code,
			Name:   l.Currency.Name,
		},
		Country:          l.Country.String(),
		CountryName:      l.CountryName,
		DisplayName:      l.DisplayName,
		SuggestedBudgets: budgets,
		FormattedBudgets: lo.Map(budgets, func(amount float64, _ int) string {
			return locale.FormatAmount(amount, l.Currency)
		}),
	}
}
