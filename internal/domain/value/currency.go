package value

type Currency struct {
	Symbol string
	Code   string
	Name   string
}

// Country ISO 3166-1 alpha-2 код. Пустое значение означает, что страну
// определить не удалось.
type Country string

const (
	CountryUnknown       Country = ""
	CountryUnitedStates  Country = "US"
	CountryUnitedKingdom Country = "GB"
	CountryCanada        Country = "CA"
	CountryAustralia     Country = "AU"
	CountryIndia         Country = "IN"
	CountryGermany       Country = "DE"
	CountryFrance        Country = "FR"
)

func (c Country) String() string {
	return string(c)
}

// Locale результат разбора строки местоположения.
type Locale struct {
	Country     Country
	CountryName string
	Currency    Currency
	DisplayName string
	// PostalCode is set when the location was recognised as a postal code.
	PostalCode bool
}
