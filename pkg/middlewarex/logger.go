package middlewarex

import (
	"log/slog"
	"net/http"

	"giftai/pkg/contextx"
	"giftai/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger puts a request-scoped logger into the context. Must run after
// TraceID.
func Logger(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if base != nil {
				ctx = contextx.WithLogger(ctx, base)
			}

			traceID, err := contextx.TraceIDFromContext(ctx)
			if err != nil {
				logger(ctx).Error("contextx.TraceIDFromContext", logx.Error(err))
			}

			ctx = contextx.WithLogger(
				ctx,
				logger(ctx).With(
					logx.Stringer(logx.FieldTraceID, traceID),
					logx.Stringer(logx.FieldURL, r.URL),
					slog.String(logx.FieldHTTPMethod, r.Method),
					slog.String(logx.FieldIP, ClientIP(r)),
				),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
