package contextx_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"giftai/pkg/contextx"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	generated := contextx.NewTraceID()
	rq.Len(generated.String(), 20)
	rq.NotEqual(generated, contextx.NewTraceID())

	ctx = contextx.WithTraceID(ctx, generated)

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(generated, traceID)
}

func TestParseTraceID(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{name: "Caller id", raw: "web-4f2a9c", ok: true},
		{name: "Empty", raw: ""},
		{name: "Too long", raw: strings.Repeat("a", 65)},
		{name: "Max length", raw: strings.Repeat("a", 64), ok: true},
		{name: "Whitespace", raw: "abc def"},
		{name: "Header injection", raw: "abc\r\nX-Evil: 1"},
		{name: "Non ASCII", raw: "трасса"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			traceID, ok := contextx.ParseTraceID(tc.raw)
			rq.Equal(tc.ok, ok)

			if tc.ok {
				rq.Equal(tc.raw, traceID.String())
			} else {
				rq.Empty(traceID)
			}
		})
	}
}
