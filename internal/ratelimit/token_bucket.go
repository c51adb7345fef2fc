package ratelimit

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const tokenBucketScript = `
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local ttl = tonumber(ARGV[3])

local nowData = redis.call("TIME")
local now = (nowData[1] * 1000) + math.floor(nowData[2] / 1000)

local data = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(data[1])
local ts = tonumber(data[2])

if tokens == nil then
  tokens = burst
  ts = now
else
  local delta = now - ts
  if delta < 0 then
    delta = 0
  end
  local refill = (delta / 1000) * rate
  tokens = math.min(burst, tokens + refill)
  ts = now
end

local allowed = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
end

redis.call("HMSET", KEYS[1], "tokens", tokens, "ts", ts)
redis.call("PEXPIRE", KEYS[1], ttl)

return allowed
`

// TokenBucket is a redis-backed token bucket shared across instances.
type TokenBucket struct {
	client *redis.Client
	script *redis.Script
	rate   float64
	burst  int
	ttl    time.Duration
}

func NewTokenBucket(client *redis.Client, rate float64, burst int, ttl time.Duration) *TokenBucket {
	if client == nil {
		return nil
	}
	return &TokenBucket{
		client: client,
		script: redis.NewScript(tokenBucketScript),
		rate:   rate,
		burst:  burst,
		ttl:    ttl,
	}
}

// Allow consumes one token for key. A nil bucket always allows: rate
// limiting is optional and disabled when redis is not configured.
func (b *TokenBucket) Allow(ctx context.Context, key string) (bool, error) {
	if b == nil || b.client == nil {
		return true, nil
	}
	if key == "" {
		return false, errors.New("rate limit key is empty")
	}

	result, err := b.script.Run(ctx, b.client, []string{key},
		b.rate, b.burst, b.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}
