// Package ratelimit counts requests per client in fixed Redis windows.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "giftai:ratelimit:"

// Window лимит запросов на отрезок времени. Нулевой Limit отключает окно.
type Window struct {
	Name  string
	Size  time.Duration
	Limit int64
}

type Limiter struct {
	client  redis.Cmdable
	windows []Window
	now     func() time.Time
}

func NewLimiter(client redis.Cmdable, windows ...Window) *Limiter {
	return &Limiter{
		client:  client,
		windows: windows,
		now:     time.Now,
	}
}

// WithClock подменяет источник времени.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Allow увеличивает счётчики всех окон и сообщает, уложился ли клиент в
// каждый из лимитов.
func (l *Limiter) Allow(ctx context.Context, client string) (bool, error) {
	now := l.now()
	counters := make([]*redis.IntCmd, 0, len(l.windows))
	active := make([]Window, 0, len(l.windows))

	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, w := range l.windows {
			if w.Limit <= 0 || w.Size <= 0 {
				continue
			}

			key := Key(client, w, now)

			counters = append(counters, pipe.Incr(ctx, key))
			pipe.Expire(ctx, key, w.Size)

			active = append(active, w)
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis.TxPipelined: %w", err)
	}

	for i, counter := range counters {
		if counter.Val() > active[i].Limit {
			return false, nil
		}
	}

	return true, nil
}

// Key returns the counter key of the fixed window containing now.
func Key(client string, w Window, now time.Time) string {
	bucket := now.Unix() / int64(w.Size/time.Second)

	return keyPrefix + w.Name + ":" + client + ":" + strconv.FormatInt(bucket, 10)
}
