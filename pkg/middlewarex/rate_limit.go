package middlewarex

import (
	"context"
	"net/http"

	"giftai/pkg/errcodes"
	"giftai/pkg/httpx/reply"
	"giftai/pkg/logx"
)

type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests once the limiter reports the client's quota as
// exhausted. Limiter failures let the request through.
func RateLimit(l limiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			allowed, err := l.Allow(ctx, ClientIP(r))
			if err != nil {
				logger(ctx).Error("limiter.Allow", logx.Error(err))

				next.ServeHTTP(w, r)

				return
			}

			if !allowed {
				reply.Status(
					ctx, w,
					http.StatusTooManyRequests,
					errcodes.TooManyRequests,
					"Too many requests. Please wait a few minutes before trying again.",
				)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
