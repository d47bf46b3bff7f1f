package middlewarex

import (
	"net/http"

	"giftai/pkg/contextx"
)

const HeaderTraceID = "X-Trace-Id"

// TraceID reuses the caller's trace id when it looks sane and generates a new
// one otherwise. The id is echoed back in the response headers.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(HeaderTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(HeaderTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
