package reply

import (
	"context"
	"errors"
	"io"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"giftai/pkg/contextx"
	"giftai/pkg/errcodes"
	"giftai/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	SupportID string `json:"supportId"`
}

func (e *ErrorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

func (e *ErrorResponse) WithDefaultMessage(message string) {
	if e.Error == "" {
		e.Error = message
	}
}

// codedError is implemented by domain errors that carry their own code and a
// message safe to show to the user.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
	UserMessage() string
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Text(ctx context.Context, w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := io.WriteString(w, text); err != nil {
		logger(ctx).Error("io.WriteString", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	var coded codedError

	if errors.As(err, &coded) {
		status := errcodes.HTTPStatus(coded.ErrorCode())

		if status >= http.StatusInternalServerError {
			logger(ctx).Error("error", logx.Error(err))
		} else {
			logger(ctx).Warn("error", logx.Error(err))
		}

		JSON(ctx, w, status, ErrorResponse{
			Error:     coded.UserMessage(),
			Code:      coded.ErrorCode().String(),
			SupportID: supportID(ctx),
		})

		return
	}

	logger(ctx).Error("error", logx.Error(err))

	response := ErrorResponse{
		Code:      failure.Code(err).String(),
		Error:     failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		response.WithDefaultMessage("Invalid request")
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		response.WithDefaultMessage("Not found")
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnauthorizedError(err):
		response.WithDefaultCode(errcodes.Unauthorized)
		response.WithDefaultMessage("Unauthorized")
		JSON(ctx, w, http.StatusUnauthorized, response)
	case failure.IsForbiddenError(err):
		response.WithDefaultCode(errcodes.Forbidden)
		response.WithDefaultMessage("Forbidden")
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		// Текст неизвестной ошибки наружу не отдаём.
		response.Code = errcodes.InternalServerError.String()
		response.Error = "Internal server error. Please try again later."
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

// Status replies with an error body for failures detected outside of the
// handlers, e.g. in middleware.
func Status(ctx context.Context, w http.ResponseWriter, statusCode int, code failure.ErrorCode, message string) {
	JSON(ctx, w, statusCode, ErrorResponse{
		Error:     message,
		Code:      code.String(),
		SupportID: supportID(ctx),
	})
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
