// Package locale resolves free-text locations and postal codes to a country
// and its currency.
package locale

import (
	"math"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"giftai/internal/domain/value"
)

const (
	cacheTTL             = time.Hour
	cacheCleanupInterval = 10 * time.Minute
	maxCachedKeyLen      = 100

	defaultCurrencyCode = "USD"
)

// Resolver is safe for concurrent use.
type Resolver struct {
	cache *cache.Cache
}

func NewResolver() *Resolver {
	return &Resolver{
		cache: cache.New(cacheTTL, cacheCleanupInterval),
	}
}

// Resolve tries, in order: postal-code patterns, country names, major city
// keywords. Unrecognised locations get an unknown country priced in USD.
func (r *Resolver) Resolve(location string) value.Locale {
	key := strings.TrimSpace(location)

	// Длинные строки не кэшируются: ручка публичная, ключи задаёт клиент.
	if len(key) > maxCachedKeyLen {
		return resolve(key)
	}

	if cached, ok := r.cache.Get(key); ok {
		return cached.(value.Locale) //nolint:forcetypeassert
	}

	loc := resolve(key)
	r.cache.SetDefault(key, loc)

	return loc
}

// Currency is a shortcut for Resolve(location).Currency.
func (r *Resolver) Currency(location string) value.Currency {
	return r.Resolve(location).Currency
}

func resolve(trimmed string) value.Locale {
	for _, p := range postalPatterns {
		if p.pattern.MatchString(trimmed) {
			return value.Locale{
				Country:     p.place.country,
				CountryName: p.place.name,
				Currency:    currencies[p.place.currency],
				DisplayName: trimmed + ", " + p.place.name,
				PostalCode:  true,
			}
		}
	}

	normalized := strings.ToLower(trimmed)
	words := tokenize(normalized)

	matched, ok := matchExact(normalized)
	if !ok {
		matched, ok = matchPhrase(countryNames, words, true)
	}

	if !ok {
		matched, ok = matchPhrase(cityKeywords, words, false)
	}

	if !ok {
		return value.Locale{
			Country:     value.CountryUnknown,
			Currency:    currencies[defaultCurrencyCode],
			DisplayName: trimmed,
		}
	}

	return value.Locale{
		Country:     matched.country,
		CountryName: matched.name,
		Currency:    currencies[matched.currency],
		DisplayName: trimmed,
	}
}

func matchExact(normalized string) (place, bool) {
	for _, c := range countryNames {
		if slices.Contains(c.aliases, normalized) {
			return c.place, true
		}
	}

	return place{}, false
}

// matchPhrase compares whole words only, so "us" never matches inside
// "australia". With reverse set, a partial name such as "arab emirates" also
// matches "united arab emirates".
func matchPhrase(table []countryName, words []string, reverse bool) (place, bool) {
	for _, c := range table {
		for _, alias := range c.aliases {
			aliasWords := tokenize(alias)

			if containsPhrase(words, aliasWords) || (reverse && containsPhrase(aliasWords, words)) {
				return c.place, true
			}
		}
	}

	return place{}, false
}

func containsPhrase(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}

	for i := 0; i+len(needle) <= len(haystack); i++ {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return true
		}
	}

	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// DisplayName appends the country to a recognised postal code:
// "10001" becomes "10001, United States". Anything else is returned trimmed.
func (r *Resolver) DisplayName(location string) string {
	return r.Resolve(location).DisplayName
}

// SuggestedBudgets returns five ascending example budgets for a currency
// code. Unknown codes get the USD tiers.
func SuggestedBudgets(code string) []float64 {
	tiers, ok := suggestedBudgets[code]
	if !ok {
		tiers = suggestedBudgets[defaultCurrencyCode]
	}

	return slices.Clone(tiers)
}

//nolint:gochecknoglobals
var printer = message.NewPrinter(language.English)

// FormatAmount prints an amount with the currency symbol and English digit
// grouping. Yen, won and rupiah are rounded to whole units.
func FormatAmount(amount float64, currency value.Currency) string {
	if wholeUnitCurrencies[currency.Code] {
		return currency.Symbol + printer.Sprintf("%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
	}

	return currency.Symbol + printer.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(3)))
}
