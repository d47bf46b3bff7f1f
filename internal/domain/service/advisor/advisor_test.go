package advisor_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"giftai/internal/domain"
	"giftai/internal/domain/service/advisor"
	"giftai/internal/domain/service/locale"
	"giftai/internal/domain/value"
	"giftai/pkg/errcodes"
)

type ModelMock struct {
	ConfiguredFunc func() bool
	CompleteFunc   func(ctx context.Context, prompt string, sampling value.Sampling) (string, error)

	mu    sync.Mutex
	calls []string
}

func (m *ModelMock) Configured() bool {
	if m.ConfiguredFunc == nil {
		return true
	}

	return m.ConfiguredFunc()
}

func (m *ModelMock) Complete(ctx context.Context, prompt string, sampling value.Sampling) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, prompt)
	m.mu.Unlock()

	return m.CompleteFunc(ctx, prompt, sampling)
}

func (m *ModelMock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.calls...)
}

// scripted answers prompts in order.
func scripted(answers ...string) *ModelMock {
	var (
		mu sync.Mutex
		i  int
	)

	return &ModelMock{
		CompleteFunc: func(context.Context, string, value.Sampling) (string, error) {
			mu.Lock()
			defer mu.Unlock()

			if i >= len(answers) {
				return "", errors.New("unexpected model call")
			}

			answer := answers[i]
			i++

			return answer, nil
		},
	}
}

type apiError struct {
	status int
}

func (e *apiError) Error() string       { return "upstream failure" }
func (e *apiError) HTTPStatusCode() int { return e.status }

const threeSuggestions = `[
  {"name": "Sketchbook", "description": "A4 paper.", "reason": "She draws.",
   "shopping_links": [{"platform": "Amazon", "url": "https://amazon.com/s?k=sketchbook", "price_range": "$20-30"}]},
  {"name": "Paints", "description": "Watercolors.", "reason": "She paints.",
   "shopping_links": [{"platform": "Etsy", "url": "https://etsy.com/search?q=paints", "price_range": "$30-40"}]},
  {"name": "Pottery class", "description": "One lesson.", "reason": "She likes clay.",
   "shopping_links": [{"platform": "eBay", "url": "https://ebay.com/sch/i.html?_nkw=pottery", "price_range": "$40-50"}]}
]`

func criteria() value.Criteria {
	return value.Criteria{
		Occasion:    "Birthday",
		Age:         28,
		Gender:      "Female",
		Personality: "Creative",
		Budget:      50,
		Geography:   "10001",
	}
}

func refinement(last value.ChatRole) value.Refinement {
	return value.Refinement{
		Criteria: criteria(),
		Suggestions: []value.Suggestion{
			{Name: "Mug", Description: "Ceramic", Reason: "Coffee"},
		},
		History: []value.ChatMessage{
			{Role: value.ChatRoleUser, Content: "Hi"},
			{Role: value.ChatRoleAssistant, Content: "Hello!"},
			{Role: last, Content: "Make them cheaper"},
		},
	}
}

func newService(model advisor.Model) *advisor.Service {
	return advisor.NewService(model, locale.NewResolver())
}

func TestGenerate(t *testing.T) {
	rq := require.New(t)

	model := scripted("```json\n" + threeSuggestions + "\n```")

	got, err := newService(model).Generate(context.Background(), criteria())
	rq.NoError(err)
	rq.Len(got, 3)
	rq.Equal("Sketchbook", got[0].Name)
	rq.Equal("$20-30", got[0].ShoppingLinks[0].PriceRange)
	rq.Len(model.Calls(), 1)
	rq.Contains(model.Calls()[0], "Budget: $50 (USD)")
}

func TestGenerateRejectsBeforeCallingModel(t *testing.T) {
	testCases := []struct {
		name     string
		criteria value.Criteria
		model    *ModelMock
		code     string
		message  string
	}{
		{
			name: "missing budget",
			criteria: func() value.Criteria {
				c := criteria()
				c.Budget = 0

				return c
			}(),
			model:   scripted(),
			code:    string(errcodes.ValidationError),
			message: "Missing required fields: occasion, age, gender, personality, budget, geography",
		},
		{
			name: "blank occasion",
			criteria: func() value.Criteria {
				c := criteria()
				c.Occasion = "  "

				return c
			}(),
			model: scripted(),
			code:  string(errcodes.ValidationError),
		},
		{
			name:     "model not configured",
			criteria: criteria(),
			model: &ModelMock{
				ConfiguredFunc: func() bool { return false },
			},
			code:    string(errcodes.ModelNotConfigured),
			message: "Gemini API key not configured",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := newService(tc.model).Generate(context.Background(), tc.criteria)
			rq.Error(err)

			var appErr *domain.AppError
			rq.ErrorAs(err, &appErr)
			rq.Equal(tc.code, string(appErr.Code))

			if tc.message != "" {
				rq.Equal(tc.message, appErr.UserMessage())
			}

			rq.Empty(tc.model.Calls())
		})
	}
}

// items собирает массив из n корректных идей.
func items(n int) string {
	const item = `{"name":"a","description":"b","reason":"c","shopping_links":[{"platform":"p","url":"u","price_range":"r"}]}`

	out := make([]string, n)
	for i := range out {
		out[i] = item
	}

	return "[" + strings.Join(out, ",") + "]"
}

func TestGenerateAcceptsExactlyThree(t *testing.T) {
	rq := require.New(t)

	got, err := newService(scripted(items(3))).Generate(context.Background(), criteria())
	rq.NoError(err)
	rq.Len(got, 3)
}

func TestGenerateMalformedOutput(t *testing.T) {
	testCases := []struct {
		name   string
		output string
	}{
		{name: "not json", output: "Here are some ideas!"},
		{name: "one item", output: items(1)},
		{name: "two items", output: items(2)},
		{name: "four items", output: items(4)},
		{name: "object", output: `{"name":"a"}`},
		{name: "empty", output: "   "},
		{name: "no links", output: strings.ReplaceAll(threeSuggestions, `"shopping_links": [{"platform": "Amazon", "url": "https://amazon.com/s?k=sketchbook", "price_range": "$20-30"}]`, `"shopping_links": []`)},
		{name: "empty reason", output: strings.Replace(threeSuggestions, `"She draws."`, `""`, 1)},
		{name: "link without url", output: strings.Replace(threeSuggestions, `"url": "https://etsy.com/search?q=paints", `, "", 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := newService(scripted(tc.output)).Generate(context.Background(), criteria())
			rq.Error(err)
			rq.True(domain.HasCode(err, errcodes.GenerationFailed))

			var appErr *domain.AppError
			rq.ErrorAs(err, &appErr)
			rq.Equal("Failed to generate valid gift suggestions. Please try again.", appErr.UserMessage())
		})
	}
}

func TestGenerateUpstreamErrors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{
			name:    "status 429",
			err:     &apiError{status: http.StatusTooManyRequests},
			code:    string(errcodes.ModelRateLimited),
			message: "Rate limit exceeded. Please try again later.",
		},
		{
			name:    "quota text",
			err:     errors.New("Resource has been exhausted (e.g. check quota)."),
			code:    string(errcodes.ModelRateLimited),
			message: "Rate limit exceeded. Please try again later.",
		},
		{
			name:    "api key",
			err:     errors.New("API key not valid. Please pass a valid API key."),
			code:    string(errcodes.ModelNotConfigured),
			message: "Gemini API configuration error",
		},
		{
			name:    "safety",
			err:     errors.New("response blocked: finish reason SAFETY"),
			code:    string(errcodes.ContentFiltered),
			message: "Content filtered by safety settings. Please try different inputs.",
		},
		{
			name:    "anything else",
			err:     &apiError{status: http.StatusBadGateway},
			code:    string(errcodes.InternalServerError),
			message: "Internal server error. Please try again later.",
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			code: string(errcodes.TimeoutExceeded),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			model := &ModelMock{
				CompleteFunc: func(context.Context, string, value.Sampling) (string, error) {
					return "", tc.err
				},
			}

			_, err := newService(model).Generate(context.Background(), criteria())
			rq.Error(err)
			rq.ErrorIs(err, tc.err)

			var appErr *domain.AppError
			rq.ErrorAs(err, &appErr)
			rq.Equal(tc.code, string(appErr.Code))

			if tc.message != "" {
				rq.Equal(tc.message, appErr.UserMessage())
			}
		})
	}
}

func TestRefine(t *testing.T) {
	testCases := []struct {
		name      string
		answers   []string
		kind      advisor.ReplyKind
		text      string
		calls     int
		lastCalls string
		outcome   string
	}{
		{
			name:    "refinement",
			answers: []string{"REFINEMENT", threeSuggestions},
			kind:    advisor.ReplySuggestions,
			calls:   2,
			outcome: "suggestions",
		},
		{
			name:    "refinement with punctuation",
			answers: []string{"  \"Refinement.\"\n", "```json\n" + threeSuggestions + "```"},
			kind:    advisor.ReplySuggestions,
			calls:   2,
			outcome: "suggestions",
		},
		{
			name:      "malformed refinement falls back to discussion",
			answers:   []string{"REFINEMENT", "Sorry, here are ideas: ...", "Sure! Let's talk."},
			kind:      advisor.ReplyDiscussion,
			text:      "Sure! Let's talk.",
			calls:     3,
			lastCalls: "**Your question**: Make them cheaper",
			outcome:   "fallback",
		},
		{
			name:      "discussion",
			answers:   []string{"DISCUSSION", "The first one is great because..."},
			kind:      advisor.ReplyDiscussion,
			text:      "The first one is great because...",
			calls:     2,
			lastCalls: "(Perfect because: Coffee)",
			outcome:   "discussion",
		},
		{
			name:    "unexpected intent is discussion",
			answers: []string{"MAYBE", "Happy to help."},
			kind:    advisor.ReplyDiscussion,
			text:    "Happy to help.",
			calls:   2,
			outcome: "discussion",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			registry := prometheus.NewRegistry()
			model := scripted(tc.answers...)
			svc := newService(model).WithMetrics(registry)

			reply, err := svc.Refine(context.Background(), refinement(value.ChatRoleUser))
			rq.NoError(err)
			rq.Equal(tc.kind, reply.Kind)

			if tc.kind == advisor.ReplySuggestions {
				rq.Len(reply.Suggestions, 3)
				rq.Empty(reply.Text)
			} else {
				rq.Equal(tc.text, reply.Text)
				rq.Empty(reply.Suggestions)
			}

			calls := model.Calls()
			rq.Len(calls, tc.calls)
			rq.Contains(calls[0], `User message: "Make them cheaper"`)

			if tc.lastCalls != "" {
				rq.Contains(calls[len(calls)-1], tc.lastCalls)
			}

			expected := fmt.Sprintf(`# HELP giftai_refinement_outcomes_total Refinement replies by outcome: suggestions, discussion or fallback to discussion.
# TYPE giftai_refinement_outcomes_total counter
giftai_refinement_outcomes_total{outcome=%q} 1
`, tc.outcome)
			rq.NoError(testutil.GatherAndCompare(registry, strings.NewReader(expected), "giftai_refinement_outcomes_total"))
		})
	}
}

func TestRefineRejects(t *testing.T) {
	testCases := []struct {
		name       string
		refinement value.Refinement
		configured bool
		code       string
		message    string
	}{
		{
			name:       "latest message from assistant",
			refinement: refinement(value.ChatRoleAssistant),
			configured: true,
			code:       string(errcodes.InvalidChatHistory),
			message:    "Invalid chat history format",
		},
		{
			name: "empty history",
			refinement: func() value.Refinement {
				r := refinement(value.ChatRoleUser)
				r.History = []value.ChatMessage{}

				return r
			}(),
			configured: true,
			code:       string(errcodes.InvalidChatHistory),
		},
		{
			name: "missing suggestions",
			refinement: func() value.Refinement {
				r := refinement(value.ChatRoleUser)
				r.Suggestions = nil

				return r
			}(),
			configured: true,
			code:       string(errcodes.ValidationError),
			message:    "Missing required fields: initialCriteria, initialSuggestions, chatHistory",
		},
		{
			name:       "not configured",
			refinement: refinement(value.ChatRoleUser),
			code:       string(errcodes.ModelNotConfigured),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			model := scripted()
			model.ConfiguredFunc = func() bool { return tc.configured }

			_, err := newService(model).Refine(context.Background(), tc.refinement)
			rq.Error(err)

			var appErr *domain.AppError
			rq.ErrorAs(err, &appErr)
			rq.Equal(tc.code, string(appErr.Code))

			if tc.message != "" {
				rq.Equal(tc.message, appErr.UserMessage())
			}

			rq.Empty(model.Calls())
		})
	}
}

func TestRefineUpstreamErrorDuringIntent(t *testing.T) {
	rq := require.New(t)

	model := &ModelMock{
		CompleteFunc: func(context.Context, string, value.Sampling) (string, error) {
			return "", errors.New("rate limit reached")
		},
	}

	_, err := newService(model).Refine(context.Background(), refinement(value.ChatRoleUser))
	rq.True(domain.HasCode(err, errcodes.ModelRateLimited))
}

func TestParseIntent(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{raw: "REFINEMENT", want: "REFINEMENT"},
		{raw: " refinement\n", want: "REFINEMENT"},
		{raw: `"REFINEMENT".`, want: "REFINEMENT"},
		{raw: "Discussion", want: "DISCUSSION"},
		{raw: "", want: ""},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, advisor.ParseIntent(tc.raw), tc.raw)
	}
}

func TestStripFences(t *testing.T) {
	rq := require.New(t)

	rq.Equal("[]", advisor.StripFences("```json\n[]\n```"))
	rq.Equal("[]", advisor.StripFences("```\n[]```"))
	rq.Equal("[]", advisor.StripFences("  []  "))
}
