package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"giftai/internal/domain"
	"giftai/internal/domain/entity"
	"giftai/pkg/contextx"
	"giftai/pkg/errcodes"
	"giftai/pkg/httpx/reply"
	"giftai/pkg/httpx/req"
	"giftai/pkg/lox"
	"giftai/pkg/rest"
)

//go:generate moq -rm -out history_service_mock.gen.go . historyService
type historyService interface {
	searchRecorder

	ListSearches(ctx context.Context, userID uuid.UUID) ([]entity.GiftSearch, error)
	GetSearch(ctx context.Context, userID, searchID uuid.UUID) (*entity.GiftSearch, error)
	SetFavorite(ctx context.Context, userID, suggestionID uuid.UUID, favorited bool) (*entity.GiftSuggestion, error)
	ToggleFavorite(ctx context.Context, userID, suggestionID uuid.UUID) (*entity.GiftSuggestion, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.GiftSuggestion, error)
	DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error
}

type HistoryServer struct {
	history historyService
}

func NewHistoryServer(history historyService) HistoryServer {
	return HistoryServer{
		history: history,
	}
}

func (s HistoryServer) getV1Searches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	searches, err := s.history.ListSearches(ctx, userID.UUID())
	if err != nil {
		return fmt.Errorf("history.ListSearches: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(searches, newRESTSearch))

	return nil
}

func (s HistoryServer) postV1Searches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	var request rest.RecordSearchRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	search, err := s.history.RecordSearch(
		ctx,
		userID.UUID(),
		newDomainCriteria(request.Criteria),
		newDomainSuggestions(request.Suggestions),
	)
	if err != nil {
		return fmt.Errorf("history.RecordSearch: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTSearch(*search))

	return nil
}

func (s HistoryServer) getV1Search(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	searchID, err := parseSearchID(r)
	if err != nil {
		return err
	}

	search, err := s.history.GetSearch(ctx, userID.UUID(), searchID)
	if err != nil {
		return fmt.Errorf("history.GetSearch: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSearch(*search))

	return nil
}

func (s HistoryServer) deleteV1Search(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	searchID, err := parseSearchID(r)
	if err != nil {
		return err
	}

	if err = s.history.DeleteSearch(ctx, userID.UUID(), searchID); err != nil {
		return fmt.Errorf("history.DeleteSearch: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s HistoryServer) postV1SearchSuggestions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	searchID, err := parseSearchID(r)
	if err != nil {
		return err
	}

	var request rest.AddSuggestionsRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	stored, err := s.history.AddSuggestions(ctx, userID.UUID(), searchID, newDomainSuggestions(request.Suggestions))
	if err != nil {
		return fmt.Errorf("history.AddSuggestions: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, lox.Map(stored, newRESTSavedSuggestion))

	return nil
}

func (s HistoryServer) putV1SuggestionFavorite(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	suggestionID, err := parseSuggestionID(r)
	if err != nil {
		return err
	}

	var request rest.SetFavoriteRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	suggestion, err := s.history.SetFavorite(ctx, userID.UUID(), suggestionID, *request.IsFavorited)
	if err != nil {
		return fmt.Errorf("history.SetFavorite: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSavedSuggestion(*suggestion))

	return nil
}

func (s HistoryServer) postV1SuggestionFavoriteToggle(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	suggestionID, err := parseSuggestionID(r)
	if err != nil {
		return err
	}

	suggestion, err := s.history.ToggleFavorite(ctx, userID.UUID(), suggestionID)
	if err != nil {
		return fmt.Errorf("history.ToggleFavorite: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSavedSuggestion(*suggestion))

	return nil
}

func (s HistoryServer) getV1Favorites(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	favorites, err := s.history.ListFavorites(ctx, userID.UUID())
	if err != nil {
		return fmt.Errorf("history.ListFavorites: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(favorites, newRESTSavedSuggestion))

	return nil
}

func parseSearchID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.WrapError(err, errcodes.InvalidSearchID, "Invalid search id.")
	}

	return id, nil
}

func parseSuggestionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.WrapError(err, errcodes.InvalidSuggestionID, "Invalid suggestion id.")
	}

	return id, nil
}
