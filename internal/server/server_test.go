package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"giftai/internal/domain"
	"giftai/internal/domain/entity"
	"giftai/internal/domain/service/advisor"
	"giftai/internal/domain/service/locale"
	"giftai/internal/domain/value"
	"giftai/internal/server"
	"giftai/pkg/errcodes"
	"giftai/pkg/httpx/reply"
	"giftai/pkg/middlewarex"
	"giftai/pkg/rest"
	"giftai/pkg/tests"
)

const validToken = "valid-token"

type fixture struct {
	advisor  *server.AdvisorServiceMock
	history  *server.HistoryServiceMock
	accounts *server.AccountServiceMock
	auth     *server.AuthenticatorMock
	limiter  *server.LimiterMock
	userID   uuid.UUID
}

func newFixture() *fixture {
	userID := uuid.New()

	return &fixture{
		advisor:  &server.AdvisorServiceMock{},
		history:  &server.HistoryServiceMock{},
		accounts: &server.AccountServiceMock{},
		auth: &server.AuthenticatorMock{
			AuthenticateFunc: func(_ context.Context, raw string) (value.TokenClaims, error) {
				switch raw {
				case validToken:
					return value.TokenClaims{ID: "tid", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil
				case "":
					return value.TokenClaims{}, domain.NewError(errcodes.Unauthorized, "Authentication required.")
				default:
					return value.TokenClaims{}, domain.NewError(errcodes.AccessTokenInvalid, "Invalid access token.")
				}
			},
		},
		limiter: &server.LimiterMock{
			AllowFunc: func(context.Context, string) (bool, error) { return true, nil },
		},
		userID: userID,
	}
}

func (f *fixture) router() http.Handler {
	srv := server.NewServer(
		server.NewGiftServer(f.advisor, f.history),
		server.NewLocaleServer(locale.NewResolver()),
		server.NewAccountServer(f.accounts),
		server.NewHistoryServer(f.history),
		f.auth,
	).WithRateLimiter(f.limiter)

	r := chi.NewRouter()
	r.Use(middlewarex.TraceID)
	srv.RegisterRoutes(r)

	return r
}

func (f *fixture) client(t *testing.T) tests.APIClient {
	t.Helper()

	ts := httptest.NewServer(f.router())
	t.Cleanup(ts.Close)

	return tests.NewAPIClient(ts.URL, ts.Client())
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func threeSuggestions() []value.Suggestion {
	out := make([]value.Suggestion, 0, value.SuggestionBatchSize)
	for _, name := range []string{"Book", "Mug", "Scarf"} {
		out = append(out, value.Suggestion{
			Name:          name,
			Description:   "d",
			Reason:        "r",
			ShoppingLinks: []value.ShoppingLink{{Platform: "Amazon", URL: "https://www.amazon.com/s?k=" + name, PriceRange: "$10-$20"}},
		})
	}

	return out
}

var criteriaJSON = rest.GiftCriteria{ //nolint:gochecknoglobals
	Occasion:    "Birthday",
	Age:         30,
	Gender:      "Female",
	Personality: "Bookworm",
	Budget:      50,
	Geography:   "London",
}

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name         string
		headers      http.Header
		wantRecorded bool
	}{
		{name: "Anonymous"},
		{name: "Authenticated", headers: bearer(validToken), wantRecorded: true},
		{name: "Invalid token served anonymously", headers: bearer("garbage")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			f := newFixture()
			searchID := uuid.New()

			f.advisor.GenerateFunc = func(_ context.Context, c value.Criteria) ([]value.Suggestion, error) {
				rq.Equal("London", c.Geography)
				rq.Equal(30, c.Age)
				return threeSuggestions(), nil
			}
			f.history.RecordSearchFunc = func(
				_ context.Context, _ uuid.UUID, _ value.Criteria, _ []value.Suggestion,
			) (*entity.GiftSearch, error) {
				return &entity.GiftSearch{ID: searchID}, nil
			}

			var got []rest.GiftSuggestion

			resp, err := f.client(t).Post(context.Background(), "/v1/gifts/generate", tc.headers, criteriaJSON, &got, nil)
			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.StatusCode)
			rq.Len(got, 3)
			rq.Equal("Book", got[0].Name)
			rq.Equal("$10-$20", got[0].ShoppingLinks[0].PriceRange)

			if tc.wantRecorded {
				rq.Len(f.history.RecordSearchCalls(), 1)
				rq.Equal(f.userID, f.history.RecordSearchCalls()[0].UserID)
				rq.Equal(searchID.String(), resp.Header.Get(server.HeaderSearchID))
			} else {
				rq.Empty(f.history.RecordSearchCalls())
				rq.Empty(resp.Header.Get(server.HeaderSearchID))
			}
		})
	}
}

func TestGenerateRecordFailureKeepsResponse(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.advisor.GenerateFunc = func(context.Context, value.Criteria) ([]value.Suggestion, error) {
		return threeSuggestions(), nil
	}
	f.history.RecordSearchFunc = func(
		context.Context, uuid.UUID, value.Criteria, []value.Suggestion,
	) (*entity.GiftSearch, error) {
		return nil, domain.NewError(errcodes.InternalServerError, "failed to create search")
	}

	var got []rest.GiftSuggestion

	resp, err := f.client(t).Post(context.Background(), "/v1/gifts/generate", bearer(validToken), criteriaJSON, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(got, 3)
	rq.Empty(resp.Header.Get(server.HeaderSearchID))
}

func TestGenerateErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       string
		message    string
	}{
		{
			name:       "Missing fields",
			err:        domain.NewError(errcodes.ValidationError, "Missing required fields: occasion, age, gender, personality, budget, geography"),
			statusCode: http.StatusBadRequest,
			code:       "ValidationError",
			message:    "Missing required fields: occasion, age, gender, personality, budget, geography",
		},
		{
			name:       "Not configured",
			err:        domain.NewError(errcodes.ModelNotConfigured, "Gemini API key not configured"),
			statusCode: http.StatusInternalServerError,
			code:       "ModelNotConfigured",
			message:    "Gemini API key not configured",
		},
		{
			name:       "Upstream rate limit",
			err:        domain.NewError(errcodes.ModelRateLimited, "Rate limit exceeded. Please try again later."),
			statusCode: http.StatusTooManyRequests,
			code:       "ModelRateLimited",
			message:    "Rate limit exceeded. Please try again later.",
		},
		{
			name:       "Content filtered",
			err:        domain.NewError(errcodes.ContentFiltered, "Content filtered by safety settings. Please try different inputs."),
			statusCode: http.StatusBadRequest,
			code:       "ContentFiltered",
			message:    "Content filtered by safety settings. Please try different inputs.",
		},
		{
			name:       "Malformed output",
			err:        domain.NewError(errcodes.GenerationFailed, "Failed to generate valid gift suggestions. Please try again."),
			statusCode: http.StatusInternalServerError,
			code:       "GenerationFailed",
			message:    "Failed to generate valid gift suggestions. Please try again.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			f := newFixture()
			f.advisor.GenerateFunc = func(context.Context, value.Criteria) ([]value.Suggestion, error) {
				return nil, tc.err
			}

			var errResp reply.ErrorResponse

			resp, err := f.client(t).Post(context.Background(), "/v1/gifts/generate", nil, criteriaJSON, nil, &errResp)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Equal(tc.code, errResp.Code)
			rq.Equal(tc.message, errResp.Error)
			rq.NotEmpty(errResp.SupportID)
		})
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	rq := require.New(t)

	f := newFixture()

	var errResp reply.ErrorResponse

	resp, err := f.client(t).PostJSON(context.Background(), "/v1/gifts/generate", nil, `{"age": "thirty"`, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("ValidationError", errResp.Code)
	rq.Empty(f.advisor.GenerateCalls())
}

func TestModelRoutesRateLimited(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.limiter.AllowFunc = func(context.Context, string) (bool, error) { return false, nil }

	var errResp reply.ErrorResponse

	resp, err := f.client(t).Post(context.Background(), "/v1/gifts/generate", nil, criteriaJSON, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusTooManyRequests, resp.StatusCode)
	rq.Equal("TooManyRequests", errResp.Code)
	rq.Empty(f.advisor.GenerateCalls())

	// Прочие маршруты лимитом не ограничены.
	resp, err = f.client(t).Get(context.Background(), "/v1/locale?location=London", nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
}

func refineRequest(searchID *string) rest.RefineGiftRequest {
	return rest.RefineGiftRequest{
		InitialCriteria: &criteriaJSON,
		InitialSuggestions: []rest.GiftSuggestion{
			{Name: "Book", Description: "d", Reason: "r", ShoppingLinks: []rest.ShoppingLink{}},
		},
		ChatHistory: []rest.ChatMessage{
			{Role: "user", Content: "Something cheaper please", Timestamp: "2024-05-01T10:00:00Z"},
		},
		SearchID: searchID,
	}
}

func TestRefineDiscussion(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.advisor.RefineFunc = func(_ context.Context, r value.Refinement) (advisor.Reply, error) {
		rq.Len(r.History, 1)
		rq.Equal(value.ChatRoleUser, r.History[0].Role)
		rq.Equal("London", r.Criteria.Geography)
		return advisor.Reply{Kind: advisor.ReplyDiscussion, Text: "A book suits a bookworm."}, nil
	}

	var text string

	resp, err := f.client(t).Post(context.Background(), "/v1/gifts/refine", nil, refineRequest(nil), &text, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
	rq.Equal("A book suits a bookworm.", text)
	rq.Empty(f.history.AddSuggestionsCalls())
}

func TestRefineSuggestions(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	searchID := uuid.New()

	f.advisor.RefineFunc = func(context.Context, value.Refinement) (advisor.Reply, error) {
		return advisor.Reply{Kind: advisor.ReplySuggestions, Suggestions: threeSuggestions()}, nil
	}
	f.history.AddSuggestionsFunc = func(
		_ context.Context, _, _ uuid.UUID, s []value.Suggestion,
	) ([]entity.GiftSuggestion, error) {
		return make([]entity.GiftSuggestion, len(s)), nil
	}

	var got []rest.GiftSuggestion

	id := searchID.String()

	resp, err := f.client(t).Post(context.Background(), "/v1/gifts/refine", bearer(validToken), refineRequest(&id), &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json"))
	rq.Len(got, 3)

	rq.Len(f.history.AddSuggestionsCalls(), 1)
	call := f.history.AddSuggestionsCalls()[0]
	rq.Equal(f.userID, call.UserID)
	rq.Equal(searchID, call.SearchID)
	rq.Equal(id, resp.Header.Get(server.HeaderSearchID))
}

func TestRefineInvalidSearchID(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	id := "not-a-uuid"

	var errResp reply.ErrorResponse

	resp, err := f.client(t).Post(context.Background(), "/v1/gifts/refine", bearer(validToken), refineRequest(&id), nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("InvalidSearchID", errResp.Code)
	rq.Empty(f.advisor.RefineCalls())
}

func TestRefineMissingFieldsReachAdvisorAsNil(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.advisor.RefineFunc = func(_ context.Context, r value.Refinement) (advisor.Reply, error) {
		rq.Nil(r.Suggestions)
		rq.Nil(r.History)
		return advisor.Reply{}, domain.NewError(errcodes.ValidationError, "Missing required fields: initialCriteria, initialSuggestions, chatHistory")
	}

	var errResp reply.ErrorResponse

	resp, err := f.client(t).PostJSON(context.Background(), "/v1/gifts/refine", nil, `{}`, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("Missing required fields: initialCriteria, initialSuggestions, chatHistory", errResp.Error)
}

func TestLocale(t *testing.T) {
	rq := require.New(t)

	f := newFixture()

	var got rest.LocaleResponse

	resp, err := f.client(t).Get(context.Background(), "/v1/locale?location=SW1A%201AA", nil, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("GBP", got.Currency.Code)
	rq.Equal("£", got.Currency.Symbol)
	rq.Equal("GB", got.Country)
	rq.Equal("SW1A 1AA, United Kingdom", got.DisplayName)
	rq.Equal([]float64{20, 40, 80, 150, 400}, got.SuggestedBudgets)
	rq.Equal("£20", got.FormattedBudgets[0])

	var errResp reply.ErrorResponse

	resp, err = f.client(t).Get(context.Background(), "/v1/locale", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("Missing required query parameter: location", errResp.Error)
}

func TestAuthorizedZone(t *testing.T) {
	testCases := []struct {
		name       string
		headers    http.Header
		statusCode int
		code       string
	}{
		{name: "No token", statusCode: http.StatusUnauthorized, code: "Unauthorized"},
		{name: "Bad token", headers: bearer("garbage"), statusCode: http.StatusUnauthorized, code: "AccessTokenInvalid"},
		{name: "Valid token", headers: bearer(validToken), statusCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			f := newFixture()
			f.history.ListSearchesFunc = func(context.Context, uuid.UUID) ([]entity.GiftSearch, error) {
				return []entity.GiftSearch{}, nil
			}

			var (
				searches []rest.GiftSearch
				errResp  reply.ErrorResponse
			)

			resp, err := f.client(t).Get(context.Background(), "/v1/searches", tc.headers, &searches, &errResp)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Equal(tc.code, errResp.Code)
		})
	}
}

func TestSearches(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	searchID := uuid.New()
	suggestionID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	stored := entity.GiftSearch{
		ID:        searchID,
		UserID:    f.userID,
		Criteria:  value.Criteria{Occasion: "Birthday", Age: 30, Gender: "Female", Personality: "Bookworm", Budget: 50, Geography: "London"},
		CreatedAt: createdAt,
		Suggestions: []entity.GiftSuggestion{
			{ID: suggestionID, SearchID: searchID, Suggestion: threeSuggestions()[0], CreatedAt: createdAt},
		},
	}

	f.history.GetSearchFunc = func(_ context.Context, userID, id uuid.UUID) (*entity.GiftSearch, error) {
		rq.Equal(f.userID, userID)
		if id != searchID {
			return nil, domain.NewError(errcodes.SearchNotFound, "Gift search not found.")
		}
		return &stored, nil
	}
	f.history.DeleteSearchFunc = func(context.Context, uuid.UUID, uuid.UUID) error { return nil }

	client := f.client(t)

	var got rest.GiftSearch

	resp, err := client.Get(context.Background(), "/v1/searches/"+searchID.String(), bearer(validToken), &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(searchID.String(), got.ID)
	rq.Equal("Birthday", got.Occasion)
	rq.Len(got.Suggestions, 1)
	rq.Equal(suggestionID.String(), got.Suggestions[0].ID)
	rq.Equal("Book", got.Suggestions[0].Name)

	var errResp reply.ErrorResponse

	resp, err = client.Get(context.Background(), "/v1/searches/"+uuid.NewString(), bearer(validToken), nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal("Gift search not found.", errResp.Error)

	resp, err = client.Get(context.Background(), "/v1/searches/42", bearer(validToken), nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("InvalidSearchID", errResp.Code)

	resp, err = client.Delete(context.Background(), "/v1/searches/"+searchID.String(), bearer(validToken), nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusNoContent, resp.StatusCode)
	rq.Len(f.history.DeleteSearchCalls(), 1)
	rq.Equal(searchID, f.history.DeleteSearchCalls()[0].SearchID)
}

func TestRecordSearch(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.history.RecordSearchFunc = func(
		_ context.Context, userID uuid.UUID, c value.Criteria, s []value.Suggestion,
	) (*entity.GiftSearch, error) {
		return &entity.GiftSearch{ID: uuid.New(), UserID: userID, Criteria: c}, nil
	}

	request := rest.RecordSearchRequest{
		Criteria: criteriaJSON,
		Suggestions: []rest.GiftSuggestion{
			{Name: "a"}, {Name: "b"}, {Name: "c"},
		},
	}

	var got rest.GiftSearch

	resp, err := f.client(t).Post(context.Background(), "/v1/searches", bearer(validToken), request, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal(f.userID.String(), got.UserID)
	rq.Equal("London", got.Geography)
	rq.Len(f.history.RecordSearchCalls()[0].Suggestions, 3)

	var errResp reply.ErrorResponse

	resp, err = f.client(t).PostJSON(context.Background(), "/v1/searches", bearer(validToken), `{"criteria":{}}`, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("Missing required fields: suggestions", errResp.Error)
}

func TestFavorites(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	suggestionID := uuid.New()
	favorited := false

	f.history.SetFavoriteFunc = func(_ context.Context, _, id uuid.UUID, v bool) (*entity.GiftSuggestion, error) {
		favorited = v
		return &entity.GiftSuggestion{ID: id, IsFavorited: v}, nil
	}
	f.history.ToggleFavoriteFunc = func(_ context.Context, _, id uuid.UUID) (*entity.GiftSuggestion, error) {
		favorited = !favorited
		return &entity.GiftSuggestion{ID: id, IsFavorited: favorited}, nil
	}
	f.history.ListFavoritesFunc = func(context.Context, uuid.UUID) ([]entity.GiftSuggestion, error) {
		return []entity.GiftSuggestion{{ID: suggestionID, IsFavorited: true}}, nil
	}

	client := f.client(t).WithAccessToken(validToken)
	path := "/v1/suggestions/" + suggestionID.String() + "/favorite"

	var got rest.SavedSuggestion

	resp, err := client.Put(context.Background(), path, nil, map[string]bool{"isFavorited": true}, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(got.IsFavorited)

	resp, err = client.Post(context.Background(), path+"/toggle", nil, nil, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.False(got.IsFavorited)

	var list []rest.SavedSuggestion

	resp, err = client.Get(context.Background(), "/v1/favorites", nil, &list, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(list, 1)
	rq.Equal(suggestionID.String(), list[0].ID)

	var errResp reply.ErrorResponse

	resp, err = client.Put(context.Background(), path, nil, map[string]any{}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("Missing required fields: isFavorited", errResp.Error)

	resp, err = client.Post(context.Background(), "/v1/suggestions/oops/favorite/toggle", nil, nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("InvalidSuggestionID", errResp.Code)
}

func TestAccount(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	f.accounts.SignUpFunc = func(_ context.Context, email, _ string, fullName *string) (*entity.Session, error) {
		return &entity.Session{
			AccessToken: "jwt",
			TokenID:     "tid",
			ExpiresAt:   expiresAt,
			User:        entity.User{ID: f.userID, Email: email},
			Profile:     entity.Profile{ID: f.userID, Email: email, FullName: fullName},
		}, nil
	}
	f.accounts.SignInFunc = func(context.Context, string, string) (*entity.Session, error) {
		return nil, domain.NewError(errcodes.CredentialsMismatch, "Invalid email or password. Please check your credentials and try again.")
	}
	f.accounts.SessionFunc = func(_ context.Context, claims value.TokenClaims) (*entity.Session, error) {
		return &entity.Session{TokenID: claims.ID, ExpiresAt: claims.ExpiresAt, Profile: entity.Profile{ID: claims.UserID}}, nil
	}
	f.accounts.SignOutFunc = func(context.Context, value.TokenClaims) {}

	client := f.client(t)

	var session rest.Session

	resp, err := client.Post(context.Background(), "/v1/auth/sign-up", nil, rest.SignUpRequest{
		Email:    "a@b.co",
		Password: "secret1",
	}, &session, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal("jwt", session.AccessToken)
	rq.Equal("Bearer", session.TokenType)
	rq.Equal(f.userID.String(), session.User.ID)
	rq.Equal(expiresAt, session.ExpiresAt)

	var errResp reply.ErrorResponse

	resp, err = client.Post(context.Background(), "/v1/auth/sign-in", nil, rest.SignInRequest{Email: "a@b.co", Password: "x"}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusUnauthorized, resp.StatusCode)
	rq.Equal("Invalid email or password. Please check your credentials and try again.", errResp.Error)

	var current rest.Session

	resp, err = client.Get(context.Background(), "/v1/auth/session", bearer(validToken), &current, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Empty(current.AccessToken)
	rq.Empty(current.TokenType)
	rq.Equal(f.userID.String(), current.User.ID)

	resp, err = client.Post(context.Background(), "/v1/auth/sign-out", bearer(validToken), nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusNoContent, resp.StatusCode)
	rq.Len(f.accounts.SignOutCalls(), 1)
	rq.Equal("tid", f.accounts.SignOutCalls()[0].Claims.ID)
	rq.Equal(f.userID, f.accounts.SignOutCalls()[0].Claims.UserID)
}

func TestProfile(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.accounts.UpdateProfileFunc = func(_ context.Context, id uuid.UUID, upd entity.ProfileUpdate) (*entity.Profile, error) {
		return &entity.Profile{ID: id, FullName: upd.FullName, AvatarURL: upd.AvatarURL}, nil
	}
	f.accounts.ChangePasswordFunc = func(context.Context, uuid.UUID, string, string) error { return nil }

	client := f.client(t).WithAccessToken(validToken)

	var profile rest.UserProfile

	resp, err := client.Patch(context.Background(), "/v1/profile", nil, map[string]string{"fullName": "Alice"}, &profile, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Alice", *profile.FullName)
	rq.Nil(profile.AvatarURL)
	rq.Nil(f.accounts.UpdateProfileCalls()[0].Upd.AvatarURL)

	resp, err = client.Put(context.Background(), "/v1/auth/password", nil, rest.ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "secret2",
	}, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusNoContent, resp.StatusCode)
	rq.Equal(f.userID, f.accounts.ChangePasswordCalls()[0].UserID)

	var errResp reply.ErrorResponse

	resp, err = client.Put(context.Background(), "/v1/auth/password", nil, rest.ChangePasswordRequest{NewPassword: "x"}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal("Missing required fields: currentPassword", errResp.Error)
}
