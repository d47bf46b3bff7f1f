package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"giftai/internal/domain"
	"giftai/internal/domain/entity"
	"giftai/internal/domain/service/advisor"
	"giftai/internal/domain/value"
	"giftai/pkg/contextx"
	"giftai/pkg/errcodes"
	"giftai/pkg/httpx/reply"
	"giftai/pkg/httpx/req"
	"giftai/pkg/logx"
	"giftai/pkg/lox"
	"giftai/pkg/rest"
)

// HeaderSearchID возвращает id сохранённого поиска авторизованному клиенту.
const HeaderSearchID = "X-Search-Id"

//go:generate moq -rm -out advisor_service_mock.gen.go . advisorService
type advisorService interface {
	Generate(ctx context.Context, c value.Criteria) ([]value.Suggestion, error)
	Refine(ctx context.Context, r value.Refinement) (advisor.Reply, error)
}

type searchRecorder interface {
	RecordSearch(
		ctx context.Context,
		userID uuid.UUID,
		criteria value.Criteria,
		suggestions []value.Suggestion,
	) (*entity.GiftSearch, error)
	AddSuggestions(
		ctx context.Context,
		userID, searchID uuid.UUID,
		suggestions []value.Suggestion,
	) ([]entity.GiftSuggestion, error)
}

type GiftServer struct {
	advisor  advisorService
	recorder searchRecorder
}

func NewGiftServer(gifts advisorService, recorder searchRecorder) GiftServer {
	return GiftServer{
		advisor:  gifts,
		recorder: recorder,
	}
}

func (s GiftServer) postV1GiftsGenerate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.GiftCriteria

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	criteria := newDomainCriteria(request)

	suggestions, err := s.advisor.Generate(ctx, criteria)
	if err != nil {
		return fmt.Errorf("advisor.Generate: %w", err)
	}

	if userID, err := contextx.UserIDFromContext(ctx); err == nil {
		search, recordErr := s.recorder.RecordSearch(ctx, userID.UUID(), criteria, suggestions)
		if recordErr != nil {
			logger(ctx).Error("failed to record gift search", logx.Error(recordErr))
		} else {
			w.Header().Set(HeaderSearchID, search.ID.String())
		}
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(suggestions, newRESTSuggestion))

	return nil
}

func (s GiftServer) postV1GiftsRefine(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RefineGiftRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	var searchID uuid.UUID

	if request.SearchID != nil {
		id, err := uuid.Parse(*request.SearchID)
		if err != nil {
			return domain.WrapError(err, errcodes.InvalidSearchID, "Invalid search id.")
		}
		searchID = id
	}

	result, err := s.advisor.Refine(ctx, newDomainRefinement(request))
	if err != nil {
		return fmt.Errorf("advisor.Refine: %w", err)
	}

	if result.Kind == advisor.ReplyDiscussion {
		reply.Text(ctx, w, http.StatusOK, result.Text)
		return nil
	}

	if userID, err := contextx.UserIDFromContext(ctx); err == nil && searchID != uuid.Nil {
		if _, err = s.recorder.AddSuggestions(ctx, userID.UUID(), searchID, result.Suggestions); err != nil {
			logger(ctx).Error("failed to record refined suggestions",
				logx.Error(err),
				slog.String(logx.FieldSearchID, searchID.String()),
			)
		} else {
			w.Header().Set(HeaderSearchID, searchID.String())
		}
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(result.Suggestions, newRESTSuggestion))

	return nil
}
