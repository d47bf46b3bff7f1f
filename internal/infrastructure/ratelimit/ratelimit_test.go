package ratelimit_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"giftai/internal/infrastructure/ratelimit"
)

func TestKey(t *testing.T) {
	rq := require.New(t)

	minute := ratelimit.Window{Name: "minute", Size: time.Minute, Limit: 10}
	start := time.Unix(1_700_000_040, 0)

	rq.Equal(ratelimit.Key("1.2.3.4", minute, start), ratelimit.Key("1.2.3.4", minute, start.Add(59*time.Second)))
	rq.NotEqual(ratelimit.Key("1.2.3.4", minute, start), ratelimit.Key("1.2.3.4", minute, start.Add(time.Minute)))
	rq.NotEqual(ratelimit.Key("1.2.3.4", minute, start), ratelimit.Key("5.6.7.8", minute, start))
	rq.Equal("giftai:ratelimit:minute:1.2.3.4:28333334", ratelimit.Key("1.2.3.4", minute, start))
}

func TestAllow(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDRESS is not set")
	}

	rq := require.New(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	limiter := ratelimit.NewLimiter(client,
		ratelimit.Window{Name: "minute", Size: time.Minute, Limit: 2},
		ratelimit.Window{Name: "hour", Size: time.Hour, Limit: 100},
		ratelimit.Window{Name: "disabled", Size: time.Second, Limit: 0},
	)

	ip := "test-" + xid.New().String()

	for range 2 {
		allowed, err := limiter.Allow(ctx, ip)
		rq.NoError(err)
		rq.True(allowed)
	}

	allowed, err := limiter.Allow(ctx, ip)
	rq.NoError(err)
	rq.False(allowed)

	allowed, err = limiter.Allow(ctx, ip+"-other")
	rq.NoError(err)
	rq.True(allowed)
}
