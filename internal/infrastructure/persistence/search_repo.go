package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"giftai/internal/domain"
	"giftai/internal/domain/entity"
	"giftai/pkg/errcodes"
)

const (
	searchColumns     = `id, user_id, occasion, age, gender, personality, budget, geography, created_at`
	suggestionColumns = `s.id, s.search_id, s.position, s.name, s.description, s.reason, s.shopping_links, s.is_favorited, s.created_at`
)

type SearchRepository struct {
	db *sqlx.DB
}

// NewSearchRepository создаёт новый экземпляр репозитория.
func NewSearchRepository(db *sqlx.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

func searchNotFound() error {
	return domain.NewError(errcodes.SearchNotFound, "Gift search not found.")
}

func suggestionNotFound() error {
	return domain.NewError(errcodes.SuggestionNotFound, "Gift suggestion not found.")
}

// Create сохраняет поиск и его первую подборку атомарно.
func (r *SearchRepository) Create(ctx context.Context, search *entity.GiftSearch) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO gift_searches (` + searchColumns + `)
			VALUES (:id, :user_id, :occasion, :age, :gender, :personality, :budget, :geography, :created_at)`

		if _, err := tx.NamedExecContext(ctx, query, newSearchSchema(search)); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert gift search")
		}

		return r.insertSuggestionsTx(ctx, tx, search.Suggestions)
	})
}

// AddSuggestions добавляет подборку к поиску пользователя.
func (r *SearchRepository) AddSuggestions(
	ctx context.Context,
	userID, searchID uuid.UUID,
	suggestions []entity.GiftSuggestion,
) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Блокируем поиск, чтобы его не удалили до вставки
		query := `SELECT id FROM gift_searches WHERE id = $1 AND user_id = $2 FOR UPDATE`

		var id uuid.UUID
		if err := tx.GetContext(ctx, &id, query, searchID, userID); err != nil {
			if isNoRows(err) {
				return searchNotFound()
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock gift search")
		}

		return r.insertSuggestionsTx(ctx, tx, suggestions)
	})
}

// ListByUser возвращает поиски пользователя, новые первыми.
func (r *SearchRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.GiftSearch, error) {
	query := `
		SELECT ` + searchColumns + `
		FROM gift_searches
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	var schemas []searchSchema
	if err := r.db.SelectContext(ctx, &schemas, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list gift searches")
	}

	if len(schemas) == 0 {
		return []entity.GiftSearch{}, nil
	}

	suggestions, err := r.suggestionsBySearch(ctx, lo.Map(schemas, func(s searchSchema, _ int) uuid.UUID {
		return s.ID
	}))
	if err != nil {
		return nil, err
	}

	return lo.Map(schemas, func(s searchSchema, _ int) entity.GiftSearch {
		return s.toDomain(lo.CoalesceSliceOrEmpty(suggestions[s.ID]))
	}), nil
}

// GetByID возвращает поиск, только если он принадлежит пользователю.
func (r *SearchRepository) GetByID(ctx context.Context, userID, searchID uuid.UUID) (*entity.GiftSearch, error) {
	query := `SELECT ` + searchColumns + ` FROM gift_searches WHERE id = $1 AND user_id = $2`

	var schema searchSchema
	if err := r.db.GetContext(ctx, &schema, query, searchID, userID); err != nil {
		if isNoRows(err) {
			return nil, searchNotFound()
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get gift search")
	}

	suggestions, err := r.suggestionsBySearch(ctx, []uuid.UUID{schema.ID})
	if err != nil {
		return nil, err
	}

	search := schema.toDomain(lo.CoalesceSliceOrEmpty(suggestions[schema.ID]))

	return &search, nil
}

// SetFavorite выставляет флаг избранного.
func (r *SearchRepository) SetFavorite(
	ctx context.Context,
	userID, suggestionID uuid.UUID,
	favorited bool,
) (*entity.GiftSuggestion, error) {
	return r.updateFavorite(ctx, `$3`, userID, suggestionID, favorited)
}

// ToggleFavorite инвертирует флаг избранного одной командой.
func (r *SearchRepository) ToggleFavorite(ctx context.Context, userID, suggestionID uuid.UUID) (*entity.GiftSuggestion, error) {
	return r.updateFavorite(ctx, `NOT s.is_favorited`, userID, suggestionID)
}

func (r *SearchRepository) updateFavorite(
	ctx context.Context,
	expr string,
	userID, suggestionID uuid.UUID,
	args ...any,
) (*entity.GiftSuggestion, error) {
	query := `
		UPDATE gift_suggestions s
		SET is_favorited = ` + expr + `
		FROM gift_searches g
		WHERE s.id = $1 AND s.search_id = g.id AND g.user_id = $2
		RETURNING ` + suggestionColumns

	var schema suggestionSchema
	if err := r.db.GetContext(ctx, &schema, query, append([]any{suggestionID, userID}, args...)...); err != nil {
		if isNoRows(err) {
			return nil, suggestionNotFound()
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to update favorite")
	}

	suggestion, err := schema.toDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert gift suggestion")
	}

	return &suggestion, nil
}

// ListFavorites возвращает избранные идеи пользователя, новые первыми.
func (r *SearchRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.GiftSuggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM gift_suggestions s
		JOIN gift_searches g ON g.id = s.search_id
		WHERE g.user_id = $1 AND s.is_favorited
		ORDER BY s.created_at DESC, s.position`

	var schemas []suggestionSchema
	if err := r.db.SelectContext(ctx, &schemas, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list favorites")
	}

	favorites, err := suggestionsToDomain(schemas)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert gift suggestions")
	}

	return favorites, nil
}

// Delete удаляет поиск; идеи удаляются каскадно.
func (r *SearchRepository) Delete(ctx context.Context, userID, searchID uuid.UUID) error {
	query := `DELETE FROM gift_searches WHERE id = $1 AND user_id = $2`

	return execAffecting(ctx, r.db, searchNotFound(), query, searchID, userID)
}

func (r *SearchRepository) insertSuggestionsTx(ctx context.Context, tx *sqlx.Tx, suggestions []entity.GiftSuggestion) error {
	query := `
		INSERT INTO gift_suggestions (id, search_id, position, name, description, reason, shopping_links, is_favorited, created_at)
		VALUES (:id, :search_id, :position, :name, :description, :reason, :shopping_links, :is_favorited, :created_at)`

	for i, s := range suggestions {
		schema, err := newSuggestionSchema(s, i)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal shopping links")
		}

		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert gift suggestion")
		}
	}

	return nil
}

func (r *SearchRepository) suggestionsBySearch(
	ctx context.Context,
	searchIDs []uuid.UUID,
) (map[uuid.UUID][]entity.GiftSuggestion, error) {
	query, args, err := sqlx.In(`
		SELECT `+suggestionColumns+`
		FROM gift_suggestions s
		WHERE s.search_id IN (?)
		ORDER BY s.created_at, s.position`, searchIDs)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	var schemas []suggestionSchema
	if err := r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get gift suggestions")
	}

	suggestions, err := suggestionsToDomain(schemas)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert gift suggestions")
	}

	return lo.GroupBy(suggestions, func(s entity.GiftSuggestion) uuid.UUID {
		return s.SearchID
	}), nil
}
