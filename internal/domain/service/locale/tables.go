package locale

import (
	"regexp"

	"giftai/internal/domain/value"
)

//nolint:gochecknoglobals
var currencies = map[string]value.Currency{
	"USD": {Symbol: "$", Code: "USD", Name: "US Dollar"},
	"CAD": {Symbol: "C$", Code: "CAD", Name: "Canadian Dollar"},
	"MXN": {Symbol: "$", Code: "MXN", Name: "Mexican Peso"},
	"GBP": {Symbol: "£", Code: "GBP", Name: "British Pound"},
	"EUR": {Symbol: "€", Code: "EUR", Name: "Euro"},
	"SEK": {Symbol: "kr", Code: "SEK", Name: "Swedish Krona"},
	"NOK": {Symbol: "kr", Code: "NOK", Name: "Norwegian Krone"},
	"DKK": {Symbol: "kr", Code: "DKK", Name: "Danish Krone"},
	"CHF": {Symbol: "CHF", Code: "CHF", Name: "Swiss Franc"},
	"PLN": {Symbol: "zł", Code: "PLN", Name: "Polish Złoty"},
	"AUD": {Symbol: "A$", Code: "AUD", Name: "Australian Dollar"},
	"NZD": {Symbol: "NZ$", Code: "NZD", Name: "New Zealand Dollar"},
	"JPY": {Symbol: "¥", Code: "JPY", Name: "Japanese Yen"},
	"KRW": {Symbol: "₩", Code: "KRW", Name: "South Korean Won"},
	"CNY": {Symbol: "¥", Code: "CNY", Name: "Chinese Yuan"},
	"INR": {Symbol: "₹", Code: "INR", Name: "Indian Rupee"},
	"SGD": {Symbol: "S$", Code: "SGD", Name: "Singapore Dollar"},
	"HKD": {Symbol: "HK$", Code: "HKD", Name: "Hong Kong Dollar"},
	"THB": {Symbol: "฿", Code: "THB", Name: "Thai Baht"},
	"MYR": {Symbol: "RM", Code: "MYR", Name: "Malaysian Ringgit"},
	"PHP": {Symbol: "₱", Code: "PHP", Name: "Philippine Peso"},
	"IDR": {Symbol: "Rp", Code: "IDR", Name: "Indonesian Rupiah"},
	"ILS": {Symbol: "₪", Code: "ILS", Name: "Israeli Shekel"},
	"SAR": {Symbol: "SR", Code: "SAR", Name: "Saudi Riyal"},
	"AED": {Symbol: "AED", Code: "AED", Name: "UAE Dirham"},
	"ZAR": {Symbol: "R", Code: "ZAR", Name: "South African Rand"},
	"EGP": {Symbol: "E£", Code: "EGP", Name: "Egyptian Pound"},
	"BRL": {Symbol: "R$", Code: "BRL", Name: "Brazilian Real"},
	"ARS": {Symbol: "$", Code: "ARS", Name: "Argentine Peso"},
	"CLP": {Symbol: "$", Code: "CLP", Name: "Chilean Peso"},
	"COP": {Symbol: "$", Code: "COP", Name: "Colombian Peso"},
	"PEN": {Symbol: "S/", Code: "PEN", Name: "Peruvian Sol"},
}

// place страна с её валютой.
type place struct {
	country  value.Country
	name     string
	currency string
}

type postalPattern struct {
	pattern *regexp.Regexp
	place   place
}

// Порядок важен: побеждает первое совпадение. Пятизначный индекс всегда
// считается американским, четырёхзначный австралийским.
//
//nolint:gochecknoglobals
var postalPatterns = []postalPattern{
	{regexp.MustCompile(`^\d{5}(-\d{4})?$`), place{value.CountryUnitedStates, "United States", "USD"}},
	{regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9][A-Z0-9]?\s?[0-9][A-Z]{2}$`), place{value.CountryUnitedKingdom, "United Kingdom", "GBP"}},
	{regexp.MustCompile(`(?i)^[A-Z][0-9][A-Z]\s?[0-9][A-Z][0-9]$`), place{value.CountryCanada, "Canada", "CAD"}},
	{regexp.MustCompile(`^[0-9]{4}$`), place{value.CountryAustralia, "Australia", "AUD"}},
	{regexp.MustCompile(`^[0-9]{5}$`), place{value.CountryGermany, "Germany", "EUR"}},
	{regexp.MustCompile(`^[0-9]{5}$`), place{value.CountryFrance, "France", "EUR"}},
	{regexp.MustCompile(`^[0-9]{6}$`), place{value.CountryIndia, "India", "INR"}},
	{regexp.MustCompile(`^[0-9]{3}-?[0-9]{4}$`), place{"JP", "Japan", "JPY"}},
	{regexp.MustCompile(`(?i)^[0-9]{4}\s?[A-Z]{2}$`), place{"NL", "Netherlands", "EUR"}},
	{regexp.MustCompile(`^[0-9]{4}$`), place{"CH", "Switzerland", "CHF"}},
	{regexp.MustCompile(`^[0-9]{6}$`), place{"SG", "Singapore", "SGD"}},
	{regexp.MustCompile(`^[0-9]{4}$`), place{"NZ", "New Zealand", "NZD"}},
	{regexp.MustCompile(`^[0-9]{5}$`), place{"KR", "South Korea", "KRW"}},
	{regexp.MustCompile(`^[0-9]{5}-?[0-9]{3}$`), place{"BR", "Brazil", "BRL"}},
}

type countryName struct {
	aliases []string
	place   place
}

//nolint:gochecknoglobals
var countryNames = []countryName{
	// North America
	{[]string{"united states", "usa", "us", "america"}, place{value.CountryUnitedStates, "United States", "USD"}},
	{[]string{"canada"}, place{value.CountryCanada, "Canada", "CAD"}},
	{[]string{"mexico"}, place{"MX", "Mexico", "MXN"}},
	// Europe
	{[]string{"united kingdom", "uk", "britain", "england", "scotland", "wales"}, place{value.CountryUnitedKingdom, "United Kingdom", "GBP"}},
	{[]string{"ireland"}, place{"IE", "Ireland", "EUR"}},
	{[]string{"germany", "deutschland"}, place{value.CountryGermany, "Germany", "EUR"}},
	{[]string{"france"}, place{value.CountryFrance, "France", "EUR"}},
	{[]string{"spain"}, place{"ES", "Spain", "EUR"}},
	{[]string{"italy"}, place{"IT", "Italy", "EUR"}},
	{[]string{"netherlands"}, place{"NL", "Netherlands", "EUR"}},
	{[]string{"belgium"}, place{"BE", "Belgium", "EUR"}},
	{[]string{"austria"}, place{"AT", "Austria", "EUR"}},
	{[]string{"portugal"}, place{"PT", "Portugal", "EUR"}},
	{[]string{"greece"}, place{"GR", "Greece", "EUR"}},
	{[]string{"finland"}, place{"FI", "Finland", "EUR"}},
	{[]string{"sweden"}, place{"SE", "Sweden", "SEK"}},
	{[]string{"norway"}, place{"NO", "Norway", "NOK"}},
	{[]string{"denmark"}, place{"DK", "Denmark", "DKK"}},
	{[]string{"switzerland"}, place{"CH", "Switzerland", "CHF"}},
	{[]string{"poland"}, place{"PL", "Poland", "PLN"}},
	// Asia Pacific
	{[]string{"australia"}, place{value.CountryAustralia, "Australia", "AUD"}},
	{[]string{"new zealand"}, place{"NZ", "New Zealand", "NZD"}},
	{[]string{"japan"}, place{"JP", "Japan", "JPY"}},
	{[]string{"south korea", "korea"}, place{"KR", "South Korea", "KRW"}},
	{[]string{"china"}, place{"CN", "China", "CNY"}},
	{[]string{"india"}, place{value.CountryIndia, "India", "INR"}},
	{[]string{"singapore"}, place{"SG", "Singapore", "SGD"}},
	{[]string{"hong kong"}, place{"HK", "Hong Kong", "HKD"}},
	{[]string{"thailand"}, place{"TH", "Thailand", "THB"}},
	{[]string{"malaysia"}, place{"MY", "Malaysia", "MYR"}},
	{[]string{"philippines"}, place{"PH", "Philippines", "PHP"}},
	{[]string{"indonesia"}, place{"ID", "Indonesia", "IDR"}},
	// Middle East & Africa
	{[]string{"israel"}, place{"IL", "Israel", "ILS"}},
	{[]string{"saudi arabia"}, place{"SA", "Saudi Arabia", "SAR"}},
	{[]string{"uae", "united arab emirates"}, place{"AE", "United Arab Emirates", "AED"}},
	{[]string{"south africa"}, place{"ZA", "South Africa", "ZAR"}},
	{[]string{"egypt"}, place{"EG", "Egypt", "EGP"}},
	// South America
	{[]string{"brazil"}, place{"BR", "Brazil", "BRL"}},
	{[]string{"argentina"}, place{"AR", "Argentina", "ARS"}},
	{[]string{"chile"}, place{"CL", "Chile", "CLP"}},
	{[]string{"colombia"}, place{"CO", "Colombia", "COP"}},
	{[]string{"peru"}, place{"PE", "Peru", "PEN"}},
}

// Крупные города и регионы, по которым страну можно узнать без её названия.
//
//nolint:gochecknoglobals
var cityKeywords = []countryName{
	{[]string{"new york", "california", "texas", "florida"}, place{value.CountryUnitedStates, "United States", "USD"}},
	{[]string{"london", "manchester", "birmingham", "glasgow"}, place{value.CountryUnitedKingdom, "United Kingdom", "GBP"}},
	{[]string{"toronto", "vancouver", "montreal", "ontario"}, place{value.CountryCanada, "Canada", "CAD"}},
	{[]string{"sydney", "melbourne", "brisbane", "perth"}, place{value.CountryAustralia, "Australia", "AUD"}},
	{[]string{"mumbai", "delhi", "bangalore", "chennai", "maharashtra", "karnataka"}, place{value.CountryIndia, "India", "INR"}},
}

//nolint:gochecknoglobals
var suggestedBudgets = map[string][]float64{
	"USD": {25, 50, 100, 200, 500},
	"CAD": {25, 50, 100, 200, 500},
	"AUD": {25, 50, 100, 200, 500},
	"NZD": {25, 50, 100, 200, 500},
	"CHF": {25, 50, 100, 200, 500},
	"GBP": {20, 40, 80, 150, 400},
	"EUR": {25, 45, 90, 180, 450},
	"JPY": {3000, 6000, 12000, 25000, 60000},
	"KRW": {30000, 60000, 120000, 250000, 600000},
	"INR": {2000, 4000, 8000, 16000, 40000},
	"CNY": {180, 350, 700, 1400, 3500},
	"BRL": {130, 260, 520, 1000, 2600},
	"MXN": {500, 1000, 2000, 4000, 10000},
	"ZAR": {400, 800, 1600, 3200, 8000},
	"SGD": {35, 70, 140, 280, 700},
}

// Валюты, суммы в которых показываются без дробной части.
//
//nolint:gochecknoglobals
var wholeUnitCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"IDR": true,
}
