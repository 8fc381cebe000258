package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-todo-boards/internal/logger"
)

// slidingWindow admits a hit when fewer than limit hits were recorded in the
// last window. KEYS[1] is the sorted set of hits, KEYS[2] a member counter.
var slidingWindow = redis.NewScript(`
	local key = KEYS[1]
	local counter_key = KEYS[2]
	local now = tonumber(ARGV[1])
	local window_ms = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window_ms)

	local current = redis.call('ZCARD', key)
	if current >= limit then
		return 0
	end

	local seq = redis.call('INCR', counter_key)
	redis.call('ZADD', key, now, now .. ':' .. seq)
	local ttl = math.ceil(window_ms / 1000)
	redis.call('EXPIRE', key, ttl)
	redis.call('EXPIRE', counter_key, ttl)
	return 1
`)

// RateLimitRepository keeps per-key request windows in Redis.
type RateLimitRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRateLimitRepository creates a repository storing windows under keyPrefix.
func NewRateLimitRepository(client *redis.Client, keyPrefix string) *RateLimitRepository {
	return &RateLimitRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Allow records a hit for key and reports whether it fits in the window.
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("%s%s", r.keyPrefix, key)

	res, err := slidingWindow.Run(ctx, r.client,
		[]string{redisKey, redisKey + ":seq"},
		time.Now().UnixMilli(), window.Milliseconds(), limit,
	).Int()

	logger.Log.Debugw("rate limit",
		"key", redisKey,
		"result", res,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return res == 1, nil
}
