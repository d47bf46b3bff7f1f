package middlewarex_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"giftai/pkg/contextx"
	"giftai/pkg/logx"
	"giftai/pkg/middlewarex"
)

type limiterMock struct {
	AllowFunc func(ctx context.Context, key string) (bool, error)
}

func (m *limiterMock) Allow(ctx context.Context, key string) (bool, error) {
	return m.AllowFunc(ctx, key)
}

func TestRateLimit(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		allowed    bool
		err        error
		statusCode int
	}{
		{name: "Allowed", allowed: true, statusCode: http.StatusOK},
		{name: "Exhausted", allowed: false, statusCode: http.StatusTooManyRequests},
		{name: "Limiter failure lets request through", err: errors.New("redis: connection refused"), statusCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var gotKey string

			limiter := &limiterMock{
				AllowFunc: func(_ context.Context, key string) (bool, error) {
					gotKey = key
					return tc.allowed, tc.err
				},
			}

			handler := middlewarex.RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodPost, "/v1/gifts/generate", http.NoBody)
			r.RemoteAddr = "203.0.113.7:51234"

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal("203.0.113.7", gotKey)

			if tc.statusCode == http.StatusTooManyRequests {
				rq.Contains(w.Body.String(), `"code":"TooManyRequests"`)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	rq := require.New(t)

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.RemoteAddr = "192.0.2.1:4000"
	rq.Equal("192.0.2.1", middlewarex.ClientIP(r))

	r.Header.Set("X-Forwarded-For", " 198.51.100.4 , 10.0.0.1")
	rq.Equal("192.0.2.1", middlewarex.ClientIP(r))
}

func TestRateLimitKeyIgnoresSpoofedForwardedFor(t *testing.T) {
	rq := require.New(t)

	var keys []string

	limiter := &limiterMock{AllowFunc: func(_ context.Context, key string) (bool, error) {
		keys = append(keys, key)
		return true, nil
	}}

	proxies, err := middlewarex.ParseTrustedProxies([]string{"10.0.0.0/8"})
	rq.NoError(err)

	handler := middlewarex.TrustedProxies(proxies)(
		middlewarex.RateLimit(limiter)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})),
	)

	for _, forwarded := range []string{"1.1.1.1", "2.2.2.2", "anything"} {
		r := httptest.NewRequest(http.MethodPost, "/v1/gifts/generate", http.NoBody)
		r.RemoteAddr = "203.0.113.7:5555"
		r.Header.Set("X-Forwarded-For", forwarded)

		handler.ServeHTTP(httptest.NewRecorder(), r)
	}

	rq.Equal([]string{"203.0.113.7", "203.0.113.7", "203.0.113.7"}, keys)
}

func TestTrustedProxies(t *testing.T) {
	testCases := []struct {
		name       string
		proxies    []string
		remoteAddr string
		forwarded  []string
		want       string
	}{
		{
			name:       "No proxies configured",
			remoteAddr: "10.0.0.5:1234",
			forwarded:  []string{"198.51.100.4"},
			want:       "10.0.0.5",
		},
		{
			name:       "Untrusted peer",
			proxies:    []string{"10.0.0.0/8"},
			remoteAddr: "203.0.113.7:5555",
			forwarded:  []string{"198.51.100.4"},
			want:       "203.0.113.7",
		},
		{
			name:       "Trusted proxy",
			proxies:    []string{"10.0.0.0/8"},
			remoteAddr: "10.0.0.5:1234",
			forwarded:  []string{"198.51.100.4"},
			want:       "198.51.100.4",
		},
		{
			name:       "Client prepended hops are ignored",
			proxies:    []string{"10.0.0.0/8"},
			remoteAddr: "10.0.0.5:1234",
			forwarded:  []string{"1.1.1.1, 198.51.100.4, 10.0.0.9"},
			want:       "198.51.100.4",
		},
		{
			name:       "Several headers",
			proxies:    []string{"10.0.0.1"},
			remoteAddr: "10.0.0.1:1234",
			forwarded:  []string{"1.1.1.1", "198.51.100.4"},
			want:       "198.51.100.4",
		},
		{
			name:       "Garbage hop stops the walk",
			proxies:    []string{"10.0.0.0/8"},
			remoteAddr: "10.0.0.5:1234",
			forwarded:  []string{"anything"},
			want:       "10.0.0.5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			proxies, err := middlewarex.ParseTrustedProxies(tc.proxies)
			rq.NoError(err)

			var got string

			handler := middlewarex.TrustedProxies(proxies)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = middlewarex.ClientIP(r)
			}))

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			r.RemoteAddr = tc.remoteAddr

			for _, v := range tc.forwarded {
				r.Header.Add("X-Forwarded-For", v)
			}

			handler.ServeHTTP(httptest.NewRecorder(), r)

			rq.Equal(tc.want, got)
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	rq := require.New(t)

	proxies, err := middlewarex.ParseTrustedProxies([]string{" 10.0.0.0/8", "", "192.0.2.1"})
	rq.NoError(err)
	rq.Len(proxies, 2)
	rq.Equal("192.0.2.1/32", proxies[1].String())

	_, err = middlewarex.ParseTrustedProxies([]string{"not-an-ip"})
	rq.Error(err)
}

func TestTraceIDAndRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middlewarex.TraceID(
		middlewarex.Logger(base)(
			middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic("boom")
			})),
		),
	)

	r := httptest.NewRequest(http.MethodGet, "/v1/locale", http.NoBody)
	r.Header.Set(middlewarex.HeaderTraceID, "trace-123")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Equal("trace-123", w.Header().Get(middlewarex.HeaderTraceID))
	rq.Contains(w.Body.String(), `"supportId":"trace-123"`)
	rq.Contains(buf.String(), "panic in handler")
	rq.Contains(buf.String(), `"`+logx.FieldTraceID+`":"trace-123"`)
}

func TestTraceIDGeneratesID(t *testing.T) {
	rq := require.New(t)

	var traceID contextx.TraceID

	handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, _ = contextx.TraceIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.Header.Set(middlewarex.HeaderTraceID, strings.Repeat("x", 100))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	const xidLen = 20

	rq.Len(traceID.String(), xidLen)
	rq.Equal(traceID.String(), w.Header().Get(middlewarex.HeaderTraceID))
}

func TestRequestResponseLogging(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		level  string
	}{
		{name: "Success", status: http.StatusOK, level: "INFO"},
		{name: "Client error", status: http.StatusBadRequest, level: "WARN"},
		{name: "Server error", status: http.StatusInternalServerError, level: "ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer

			base := slog.New(slog.NewJSONHandler(&buf, nil))
			masker := logx.NewSensitiveDataMasker()

			handler := middlewarex.Logger(base)(
				middlewarex.RequestLogging(masker, 0)(
					middlewarex.ResponseLogging(masker, 0)(
						http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
							w.WriteHeader(tc.status)
							_, _ = w.Write([]byte(`{"accessToken":"secret-token"}`))
						}),
					),
				),
			)

			r := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in",
				strings.NewReader(`{"email":"jane@doe.com","password":"abc123"}`))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			rq.Equal(tc.status, w.Code)

			logs := buf.String()
			rq.NotContains(logs, "abc123")
			rq.NotContains(logs, "jane@doe.com")
			rq.NotContains(logs, "secret-token")
			rq.Contains(logs, `"level":"`+tc.level+`","msg":"`+logx.FieldHTTPResponse+`"`)
		})
	}
}
