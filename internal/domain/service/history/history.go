// Package history stores gift searches and their suggestions for signed-in
// users.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"giftai/internal/domain"
	"giftai/internal/domain/entity"
	"giftai/internal/domain/value"
	"giftai/pkg/contextx"
	"giftai/pkg/errcodes"
	"giftai/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -rm -out search_repository_mock.gen.go . SearchRepository
type SearchRepository interface {
	Create(ctx context.Context, search *entity.GiftSearch) error
	AddSuggestions(ctx context.Context, userID, searchID uuid.UUID, suggestions []entity.GiftSuggestion) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.GiftSearch, error)
	GetByID(ctx context.Context, userID, searchID uuid.UUID) (*entity.GiftSearch, error)
	SetFavorite(ctx context.Context, userID, suggestionID uuid.UUID, favorited bool) (*entity.GiftSuggestion, error)
	ToggleFavorite(ctx context.Context, userID, suggestionID uuid.UUID) (*entity.GiftSuggestion, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.GiftSuggestion, error)
	Delete(ctx context.Context, userID, searchID uuid.UUID) error
}

type Service struct {
	repo SearchRepository
	now  func() time.Time
}

func NewService(repo SearchRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock подменяет источник времени.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// RecordSearch сохраняет критерии и первую подборку из трёх идей.
func (s *Service) RecordSearch(
	ctx context.Context,
	userID uuid.UUID,
	criteria value.Criteria,
	suggestions []value.Suggestion,
) (*entity.GiftSearch, error) {
	if err := checkBatch(suggestions); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	search := &entity.GiftSearch{
		ID:        uuid.New(),
		UserID:    userID,
		Criteria:  criteria,
		CreatedAt: now,
	}
	search.Suggestions = newBatch(search.ID, now, suggestions)

	if err := s.repo.Create(ctx, search); err != nil {
		return nil, fmt.Errorf("repo.Create: %w", err)
	}

	logger(ctx).Info("gift search recorded",
		slog.String(logx.FieldSearchID, search.ID.String()),
	)

	return search, nil
}

// AddSuggestions сохраняет очередную подборку уточнения.
func (s *Service) AddSuggestions(
	ctx context.Context,
	userID, searchID uuid.UUID,
	suggestions []value.Suggestion,
) ([]entity.GiftSuggestion, error) {
	if err := checkBatch(suggestions); err != nil {
		return nil, err
	}

	stored := newBatch(searchID, s.now().UTC(), suggestions)

	if err := s.repo.AddSuggestions(ctx, userID, searchID, stored); err != nil {
		return nil, fmt.Errorf("repo.AddSuggestions: %w", err)
	}

	logger(ctx).Info("gift suggestions added",
		slog.String(logx.FieldSearchID, searchID.String()),
	)

	return stored, nil
}

func (s *Service) ListSearches(ctx context.Context, userID uuid.UUID) ([]entity.GiftSearch, error) {
	searches, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByUser: %w", err)
	}

	return searches, nil
}

func (s *Service) GetSearch(ctx context.Context, userID, searchID uuid.UUID) (*entity.GiftSearch, error) {
	search, err := s.repo.GetByID(ctx, userID, searchID)
	if err != nil {
		return nil, fmt.Errorf("repo.GetByID: %w", err)
	}

	return search, nil
}

func (s *Service) SetFavorite(
	ctx context.Context,
	userID, suggestionID uuid.UUID,
	favorited bool,
) (*entity.GiftSuggestion, error) {
	suggestion, err := s.repo.SetFavorite(ctx, userID, suggestionID, favorited)
	if err != nil {
		return nil, fmt.Errorf("repo.SetFavorite: %w", err)
	}

	return suggestion, nil
}

// ToggleFavorite инвертирует флаг; два вызова подряд возвращают исходное состояние.
func (s *Service) ToggleFavorite(ctx context.Context, userID, suggestionID uuid.UUID) (*entity.GiftSuggestion, error) {
	suggestion, err := s.repo.ToggleFavorite(ctx, userID, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("repo.ToggleFavorite: %w", err)
	}

	logger(ctx).Info("favorite toggled",
		slog.String(logx.FieldSuggestionID, suggestionID.String()),
		slog.Bool("favorited", suggestion.IsFavorited),
	)

	return suggestion, nil
}

func (s *Service) ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.GiftSuggestion, error) {
	favorites, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListFavorites: %w", err)
	}

	return favorites, nil
}

func (s *Service) DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, searchID); err != nil {
		return fmt.Errorf("repo.Delete: %w", err)
	}

	logger(ctx).Info("gift search deleted",
		slog.String(logx.FieldSearchID, searchID.String()),
	)

	return nil
}

func checkBatch(suggestions []value.Suggestion) error {
	if len(suggestions) != value.SuggestionBatchSize {
		return domain.NewError(errcodes.ValidationError,
			fmt.Sprintf("Exactly %d gift suggestions are required.", value.SuggestionBatchSize))
	}

	return nil
}

func newBatch(searchID uuid.UUID, now time.Time, suggestions []value.Suggestion) []entity.GiftSuggestion {
	return lo.Map(suggestions, func(s value.Suggestion, _ int) entity.GiftSuggestion {
		return entity.GiftSuggestion{
			ID:         uuid.New(),
			SearchID:   searchID,
			Suggestion: s,
			CreatedAt:  now,
		}
	})
}
