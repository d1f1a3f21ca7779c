package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed-window counter: the first hit in a window sets the expiry.
// Returns {allowed, remaining ttl in ms}.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if current > tonumber(ARGV[2]) then
  return {0, ttl}
end
return {1, ttl}
`

// Limiter is a fixed-window request limiter shared by all server replicas.
type Limiter struct {
	client *redis.Client
	script *redis.Script
	prefix string
	limit  int
	window time.Duration
}

// NewLimiter creates a limiter allowing limit hits per window for each key.
// Keys are namespaced with prefix.
func NewLimiter(client *Client, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client.Client,
		script: redis.NewScript(rateLimitScript),
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow records a hit for key. When the key is over its limit it returns
// false and how long until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	res, err := l.script.Run(ctx, l.client, []string{l.prefix + key}, ttl, l.limit).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("redis rate limit: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("redis rate limit: unexpected reply %v", res)
	}

	retryAfter := time.Duration(res[1]) * time.Millisecond
	if retryAfter < 0 {
		retryAfter = l.window
	}
	return res[0] == 1, retryAfter, nil
}
