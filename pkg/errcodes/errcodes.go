package errcodes

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"
)

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	TooManyRequests     failure.ErrorCode = "TooManyRequests"

	AccessTokenExpired  failure.ErrorCode = "AccessTokenExpired"
	AccessTokenInvalid  failure.ErrorCode = "AccessTokenInvalid"
	AccessTokenRevoked  failure.ErrorCode = "AccessTokenRevoked"
	CredentialsMismatch failure.ErrorCode = "CredentialsMismatch"
	EmailAlreadyInUse   failure.ErrorCode = "EmailAlreadyInUse"
	InvalidPassword     failure.ErrorCode = "InvalidPassword"
	UserNotFound        failure.ErrorCode = "UserNotFound"
	ProfileNotFound     failure.ErrorCode = "ProfileNotFound"

	ModelNotConfigured failure.ErrorCode = "ModelNotConfigured"
	ModelRateLimited   failure.ErrorCode = "ModelRateLimited"
	ContentFiltered    failure.ErrorCode = "ContentFiltered"
	GenerationFailed   failure.ErrorCode = "GenerationFailed"
	InvalidChatHistory failure.ErrorCode = "InvalidChatHistory"

	SearchNotFound      failure.ErrorCode = "SearchNotFound"
	SuggestionNotFound  failure.ErrorCode = "SuggestionNotFound"
	InvalidSearchID     failure.ErrorCode = "InvalidSearchID"
	InvalidSuggestionID failure.ErrorCode = "InvalidSuggestionID"
)

//nolint:gochecknoglobals
var httpStatuses = map[failure.ErrorCode]int{
	TimeoutExceeded:     http.StatusGatewayTimeout,
	Forbidden:           http.StatusForbidden,
	ValidationError:     http.StatusBadRequest,
	NotFound:            http.StatusNotFound,
	Unauthorized:        http.StatusUnauthorized,
	TooManyRequests:     http.StatusTooManyRequests,
	AccessTokenExpired:  http.StatusUnauthorized,
	AccessTokenInvalid:  http.StatusUnauthorized,
	AccessTokenRevoked:  http.StatusUnauthorized,
	CredentialsMismatch: http.StatusUnauthorized,
	EmailAlreadyInUse:   http.StatusConflict,
	InvalidPassword:     http.StatusBadRequest,
	UserNotFound:        http.StatusNotFound,
	ProfileNotFound:     http.StatusNotFound,
	ModelNotConfigured:  http.StatusInternalServerError,
	ModelRateLimited:    http.StatusTooManyRequests,
	ContentFiltered:     http.StatusBadRequest,
	GenerationFailed:    http.StatusInternalServerError,
	InvalidChatHistory:  http.StatusBadRequest,
	SearchNotFound:      http.StatusNotFound,
	SuggestionNotFound:  http.StatusNotFound,
	InvalidSearchID:     http.StatusBadRequest,
	InvalidSuggestionID: http.StatusBadRequest,
}

// HTTPStatus returns the response status for a domain error code. Unknown
// codes are treated as internal errors.
func HTTPStatus(code failure.ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
