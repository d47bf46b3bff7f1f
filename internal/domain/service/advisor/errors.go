package advisor

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"giftai/internal/domain"
	"giftai/pkg/errcodes"
)

const (
	msgConfigError     = "Gemini API configuration error"
	msgRateLimited     = "Rate limit exceeded. Please try again later."
	msgContentFiltered = "Content filtered by safety settings. Please try different inputs."
	msgInternal        = "Internal server error. Please try again later."
)

type statusCoder interface {
	HTTPStatusCode() int
}

// classifyModelError сводит ошибку вызова модели к одной из доменных.
func classifyModelError(err error) error {
	var coded statusCoder
	if errors.As(err, &coded) && coded.HTTPStatusCode() == http.StatusTooManyRequests {
		return domain.WrapError(err, errcodes.ModelRateLimited, msgRateLimited)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.WrapError(err, errcodes.TimeoutExceeded, "Model request timed out. Please try again later.")
	}

	text := err.Error()
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(text, "API key"):
		return domain.WrapError(err, errcodes.ModelNotConfigured, msgConfigError)
	case strings.Contains(lower, "quota") || strings.Contains(lower, "rate limit"):
		return domain.WrapError(err, errcodes.ModelRateLimited, msgRateLimited)
	case strings.Contains(text, "SAFETY"):
		return domain.WrapError(err, errcodes.ContentFiltered, msgContentFiltered)
	default:
		return domain.WrapError(err, errcodes.InternalServerError, msgInternal)
	}
}
