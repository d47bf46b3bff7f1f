package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIntent          = "intent"
	FieldIP              = "ip"
	FieldLocation        = "location"
	FieldModel           = "model"
	FieldModelOutput     = "model-output"
	FieldOutcome         = "outcome"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSearchID        = "search-id"
	FieldStack           = "stack"
	FieldSuggestionID    = "suggestion-id"
	FieldTraceID         = "trace-id"
	FieldUpstream        = "upstream"
	FieldURL             = "url"
	FieldUserID          = "user-id"
)
