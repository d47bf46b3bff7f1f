package advisor

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"giftai/internal/domain/value"
)

const msgGenerationFailed = "Failed to generate valid gift suggestions. Please try again."

var (
	errEmptyOutput = errors.New("empty model output")

	json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

	fenceReplacer = strings.NewReplacer("```json\n", "", "```json", "", "```\n", "", "```", "") //nolint:gochecknoglobals
)

type linkOutput struct {
	Platform   string `json:"platform"    validate:"required"`
	URL        string `json:"url"         validate:"required"`
	PriceRange string `json:"price_range" validate:"required"`
}

type suggestionOutput struct {
	Name          string       `json:"name"           validate:"required"`
	Description   string       `json:"description"    validate:"required"`
	Reason        string       `json:"reason"         validate:"required"`
	ShoppingLinks []linkOutput `json:"shopping_links" validate:"required,min=1,dive"`
}

type batchOutput struct {
	Suggestions []suggestionOutput `validate:"len=3,dive"`
}

// StripFences убирает обёртку markdown-блока кода вокруг JSON.
func StripFences(raw string) string {
	return strings.TrimSpace(fenceReplacer.Replace(raw))
}

func (s *Service) parseSuggestions(raw string) ([]value.Suggestion, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return nil, errEmptyOutput
	}

	var batch batchOutput
	if err := json.UnmarshalFromString(cleaned, &batch.Suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}

	if err := s.validate.Struct(batch); err != nil {
		return nil, fmt.Errorf("validate suggestions: %w", err)
	}

	return lo.Map(batch.Suggestions, func(o suggestionOutput, _ int) value.Suggestion {
		return value.Suggestion{
			Name:        o.Name,
			Description: o.Description,
			Reason:      o.Reason,
			ShoppingLinks: lo.Map(o.ShoppingLinks, func(l linkOutput, _ int) value.ShoppingLink {
				return value.ShoppingLink{Platform: l.Platform, URL: l.URL, PriceRange: l.PriceRange}
			}),
		}
	}), nil
}
