package cache_test

import (
	"context"
	"testing"
	"time"

	"pmsbridge/infras/otel/mocks"
	"pmsbridge/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableCache(t *testing.T) (cache.RedisCache, *mocks.Recorder) {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	recorder := mocks.NewRecorder()

	return cache.NewRedisCache(client, recorder), recorder
}

func TestRedisCache_FailuresAreTraced(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(c cache.RedisCache) error
	}{
		{
			name: "save with unencodable value",
			call: func(c cache.RedisCache) error {
				return c.Save(ctx, "agilysys:session", make(chan int), 60)
			},
		},
		{
			name: "get",
			call: func(c cache.RedisCache) error {
				var session string
				return c.Get(ctx, "agilysys:session", &session)
			},
		},
		{
			name: "delete",
			call: func(c cache.RedisCache) error {
				return c.Delete(ctx, "agilysys:session")
			},
		},
		{
			name: "lock",
			call: func(c cache.RedisCache) error {
				_, err := c.Lock(ctx, "sync:CNF-1", time.Minute)
				return err
			},
		},
		{
			name: "unlock",
			call: func(c cache.RedisCache) error {
				return c.Unlock(ctx, "sync:CNF-1", "owner")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := unreachableCache(t)

			err := tt.call(c)
			require.Error(t, err)

			traced := recorder.TracedErrors()
			require.Len(t, traced, 1)
			assert.Equal(t, err, traced[0])
		})
	}
}
