package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

const maxTraceIDLen = 64

// TraceID связывает логи запроса и supportId в ответе с ошибкой.
type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID принимает id от клиента, если он непустой, не длиннее 64
// символов и состоит из печатных ASCII символов.
func ParseTraceID(raw string) (TraceID, bool) {
	if raw == "" || len(raw) > maxTraceIDLen {
		return "", false
	}

	for i := range len(raw) {
		if raw[i] <= ' ' || raw[i] > '~' {
			return "", false
		}
	}

	return TraceID(raw), true
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
