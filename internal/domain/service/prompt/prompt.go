// Package prompt renders the instructions sent to the language model.
package prompt

import (
	"embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"giftai/internal/domain/service/locale"
	"giftai/internal/domain/value"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//nolint:gochecknoglobals
var templates = template.Must(template.ParseFS(templateFiles, "templates/*.tmpl"))

const (
	generationTemplate = "generation.tmpl"
	intentTemplate     = "intent.tmpl"
	refinementTemplate = "refinement.tmpl"
	discussionTemplate = "discussion.tmpl"

	guidancePrefix        = "guidance_"
	internationalGuidance = guidancePrefix + "international"
)

// promptData feeds the generation, refinement and discussion templates. The
// chat fields stay empty for generation.
type promptData struct {
	Criteria    value.Criteria
	Currency    value.Currency
	Budget      string
	Guidance    string
	Suggestions string
	Transcript  string
	Latest      string
}

type guidanceData struct {
	AgeTerms string
	Gender   string
	Symbol   string
	Code     string
	Min      int
	Max      int
	MinCents int
	MaxCents int
}

// Generation builds the prompt asking for exactly three suggestions as a JSON
// array.
func Generation(c value.Criteria, loc value.Locale) (string, error) {
	data, err := newCriteriaData(c, loc)
	if err != nil {
		return "", err
	}

	return render(generationTemplate, data)
}

// Intent builds the one-word classification prompt for the latest chat message.
func Intent(message string) (string, error) {
	return render(intentTemplate, message)
}

// Refinement builds the prompt asking for three new suggestions that follow
// the user's latest request.
func Refinement(r value.Refinement, loc value.Locale) (string, error) {
	data, err := newChatData(r, loc, false)
	if err != nil {
		return "", err
	}

	return render(refinementTemplate, data)
}

// Discussion builds the prompt for a free-text conversational answer.
func Discussion(r value.Refinement, loc value.Locale) (string, error) {
	data, err := newChatData(r, loc, true)
	if err != nil {
		return "", err
	}

	return render(discussionTemplate, data)
}

// PlatformGuidance returns country-specific shopping platforms with search URL
// templates, age and gender terms and price filters.
func PlatformGuidance(loc value.Locale, c value.Criteria) (string, error) {
	name := guidancePrefix + loc.Country.String()
	if loc.Country == value.CountryUnknown || templates.Lookup(name) == nil {
		name = internationalGuidance
	}

	low, high := PriceBounds(c.Budget)

	return render(name, guidanceData{
		AgeTerms: AgeTerms(c.Age),
		Gender:   GenderTerm(c.Gender),
		Symbol:   loc.Currency.Symbol,
		Code:     loc.Currency.Code,
		Min:      low,
		Max:      high,
		MinCents: low * 100,
		MaxCents: high * 100,
	})
}

// AgeTerms returns search keywords matching the recipient's age group.
func AgeTerms(age int) string {
	switch {
	case age >= 18 && age <= 25:
		return "young adult, college, university, teen, youth"
	case age >= 26 && age <= 35:
		return "adult, professional, millennial"
	case age >= 36 && age <= 50:
		return "adult, mature, professional"
	case age > 50:
		return "adult, senior, mature"
	default:
		return "adult"
	}
}

// GenderTerm maps free-text gender to an adult search term. "female" is
// checked before "male" since it contains it.
func GenderTerm(gender string) string {
	g := strings.ToLower(gender)

	switch {
	case strings.Contains(g, "female") || strings.Contains(g, "woman"):
		return "women"
	case strings.Contains(g, "male") || strings.Contains(g, "man"):
		return "men"
	default:
		return "adult"
	}
}

// PriceBounds returns the price filter window: 70% to 110% of the budget,
// rounded to whole units.
func PriceBounds(budget float64) (int, int) {
	return int(math.Round(budget * 0.7)), int(math.Round(budget * 1.1))
}

// Transcript renders all messages except the latest one, the user as "You"
// and the advisor as "Me".
func Transcript(r value.Refinement) string {
	earlier := r.Earlier()
	lines := make([]string, 0, len(earlier))

	for _, m := range earlier {
		speaker := "Me"
		if m.Role == value.ChatRoleUser {
			speaker = "You"
		}

		lines = append(lines, speaker+": "+m.Content)
	}

	return strings.Join(lines, "\n")
}

func numbered(suggestions []value.Suggestion, withReason bool) string {
	lines := make([]string, 0, len(suggestions))

	for i, s := range suggestions {
		line := strconv.Itoa(i+1) + ". **" + s.Name + "**: " + s.Description
		if withReason {
			line += " (Perfect because: " + s.Reason + ")"
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func newCriteriaData(c value.Criteria, loc value.Locale) (promptData, error) {
	guidance, err := PlatformGuidance(loc, c)
	if err != nil {
		return promptData{}, err
	}

	return promptData{
		Criteria: c,
		Currency: loc.Currency,
		Budget:   locale.FormatAmount(c.Budget, loc.Currency),
		Guidance: guidance,
	}, nil
}

func newChatData(r value.Refinement, loc value.Locale, withReason bool) (promptData, error) {
	data, err := newCriteriaData(r.Criteria, loc)
	if err != nil {
		return promptData{}, err
	}

	latest, _ := r.Latest()

	data.Suggestions = numbered(r.Suggestions, withReason)
	data.Transcript = Transcript(r)
	data.Latest = latest.Content

	return data, nil
}

func render(name string, data any) (string, error) {
	var b strings.Builder

	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	return strings.TrimSpace(b.String()), nil
}
