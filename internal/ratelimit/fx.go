package ratelimit

import (
	"time"

	"github.com/abiramijewels/aurum/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// LoginLimiter throttles credential attempts per client IP.
type LoginLimiter struct {
	bucket *TokenBucket
}

func NewRedisClient(cfg config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, login rate limiting disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	// 1 attempt/sec sustained, bursts of 5.
	return &LoginLimiter{bucket: NewTokenBucket(client, 1, 5, 10*time.Minute)}
}

func (l *LoginLimiter) Bucket() *TokenBucket {
	if l == nil {
		return nil
	}
	return l.bucket
}

var Module = fx.Module("ratelimit",
	fx.Provide(NewRedisClient),
	fx.Provide(NewLoginLimiter),
)
