// Package advisor turns recipient criteria and chat messages into gift
// suggestions or conversational answers using a language model.
package advisor

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"giftai/internal/domain"
	"giftai/internal/domain/service/prompt"
	"giftai/internal/domain/value"
	"giftai/pkg/contextx"
	"giftai/pkg/errcodes"
	"giftai/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	msgMissingCriteria   = "Missing required fields: occasion, age, gender, personality, budget, geography"
	msgMissingRefinement = "Missing required fields: initialCriteria, initialSuggestions, chatHistory"
	msgNotConfigured     = "Gemini API key not configured"
	msgInvalidHistory    = "Invalid chat history format"

	intentRefinement = "REFINEMENT"
)

//nolint:gochecknoglobals
var (
	generationSampling = value.Sampling{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 2000}
	refinementSampling = value.Sampling{Temperature: 0.8, TopK: 40, TopP: 0.95, MaxOutputTokens: 2500}
)

type Model interface {
	// Configured сообщает, задан ли ключ доступа к модели.
	Configured() bool
	Complete(ctx context.Context, prompt string, sampling value.Sampling) (string, error)
}

type LocaleResolver interface {
	Resolve(location string) value.Locale
}

type ReplyKind string

const (
	ReplySuggestions ReplyKind = "suggestions"
	ReplyDiscussion  ReplyKind = "discussion"
)

// Reply ответ на сообщение в чате: либо три новых идеи, либо текст.
type Reply struct {
	Kind        ReplyKind
	Suggestions []value.Suggestion
	Text        string
}

type Service struct {
	model    Model
	locales  LocaleResolver
	validate *validator.Validate
	outcomes *prometheus.CounterVec
}

func NewService(model Model, locales LocaleResolver) *Service {
	return &Service{
		model:    model,
		locales:  locales,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		outcomes: newOutcomeCounter(),
	}
}

// WithMetrics регистрирует счётчик исходов уточнения.
func (s *Service) WithMetrics(registerer prometheus.Registerer) *Service {
	registerer.MustRegister(s.outcomes)
	return s
}

// Generate запрашивает у модели ровно три идеи подарка.
func (s *Service) Generate(ctx context.Context, c value.Criteria) ([]value.Suggestion, error) {
	if !criteriaComplete(c) {
		return nil, domain.NewError(errcodes.ValidationError, msgMissingCriteria)
	}

	if !s.model.Configured() {
		return nil, domain.NewError(errcodes.ModelNotConfigured, msgNotConfigured)
	}

	text, err := prompt.Generation(c, s.locales.Resolve(c.Geography))
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to build generation prompt")
	}

	raw, err := s.model.Complete(ctx, text, generationSampling)
	if err != nil {
		return nil, classifyModelError(err)
	}

	suggestions, err := s.parseSuggestions(raw)
	if err != nil {
		logger(ctx).Error("failed to parse model output",
			logx.Error(err),
			slog.String(logx.FieldModelOutput, raw),
		)

		return nil, domain.WrapError(err, errcodes.GenerationFailed, msgGenerationFailed)
	}

	logger(ctx).Info("gift suggestions generated",
		slog.String(logx.FieldLocation, c.Geography),
	)

	return suggestions, nil
}

// Refine отвечает на последнее сообщение чата. Модель сначала определяет
// намерение; при запросе изменений возвращаются три новые идеи, иначе
// или если ответ не разобрался, возвращается текст.
func (s *Service) Refine(ctx context.Context, r value.Refinement) (Reply, error) {
	if r.Suggestions == nil || r.History == nil || !criteriaComplete(r.Criteria) {
		return Reply{}, domain.NewError(errcodes.ValidationError, msgMissingRefinement)
	}

	if !s.model.Configured() {
		return Reply{}, domain.NewError(errcodes.ModelNotConfigured, msgNotConfigured)
	}

	latest, ok := r.Latest()
	if !ok || latest.Role != value.ChatRoleUser {
		return Reply{}, domain.NewError(errcodes.InvalidChatHistory, msgInvalidHistory)
	}

	loc := s.locales.Resolve(r.Criteria.Geography)

	intentPrompt, err := prompt.Intent(latest.Content)
	if err != nil {
		return Reply{}, domain.WrapError(err, errcodes.InternalServerError, "failed to build intent prompt")
	}

	rawIntent, err := s.model.Complete(ctx, intentPrompt, refinementSampling)
	if err != nil {
		return Reply{}, classifyModelError(err)
	}

	intent := ParseIntent(rawIntent)
	logger(ctx).Info("refinement intent detected", slog.String(logx.FieldIntent, intent))

	if intent == intentRefinement {
		reply, ok, err := s.refineSuggestions(ctx, r, loc)
		if err != nil {
			return Reply{}, err
		}

		if ok {
			s.outcomes.WithLabelValues(string(ReplySuggestions)).Inc()
			return reply, nil
		}

		s.outcomes.WithLabelValues(outcomeFallback).Inc()
	}

	reply, err := s.discuss(ctx, r, loc)
	if err != nil {
		return Reply{}, err
	}

	if intent != intentRefinement {
		s.outcomes.WithLabelValues(string(ReplyDiscussion)).Inc()
	}

	return reply, nil
}

func (s *Service) refineSuggestions(ctx context.Context, r value.Refinement, loc value.Locale) (Reply, bool, error) {
	text, err := prompt.Refinement(r, loc)
	if err != nil {
		return Reply{}, false, domain.WrapError(err, errcodes.InternalServerError, "failed to build refinement prompt")
	}

	raw, err := s.model.Complete(ctx, text, refinementSampling)
	if err != nil {
		return Reply{}, false, classifyModelError(err)
	}

	suggestions, err := s.parseSuggestions(raw)
	if err != nil {
		logger(ctx).Warn("refinement output rejected, falling back to discussion",
			logx.Error(err),
			slog.String(logx.FieldModelOutput, raw),
		)

		return Reply{}, false, nil
	}

	return Reply{Kind: ReplySuggestions, Suggestions: suggestions}, true, nil
}

func (s *Service) discuss(ctx context.Context, r value.Refinement, loc value.Locale) (Reply, error) {
	text, err := prompt.Discussion(r, loc)
	if err != nil {
		return Reply{}, domain.WrapError(err, errcodes.InternalServerError, "failed to build discussion prompt")
	}

	raw, err := s.model.Complete(ctx, text, refinementSampling)
	if err != nil {
		return Reply{}, classifyModelError(err)
	}

	return Reply{Kind: ReplyDiscussion, Text: raw}, nil
}

// ParseIntent нормализует ответ классификатора: обрезает пробелы, кавычки и
// знаки препинания и приводит к верхнему регистру.
func ParseIntent(raw string) string {
	trimmed := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	return strings.ToUpper(trimmed)
}

func criteriaComplete(c value.Criteria) bool {
	return strings.TrimSpace(c.Occasion) != "" &&
		c.Age > 0 &&
		strings.TrimSpace(c.Gender) != "" &&
		strings.TrimSpace(c.Personality) != "" &&
		c.Budget > 0 &&
		strings.TrimSpace(c.Geography) != ""
}
