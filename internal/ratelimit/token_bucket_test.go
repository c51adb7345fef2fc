package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilBucketAlwaysAllows(t *testing.T) {
	var bucket *TokenBucket

	allowed, err := bucket.Allow(context.Background(), "login:1.2.3.4")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewTokenBucketNilClient(t *testing.T) {
	assert.Nil(t, NewTokenBucket(nil, 1, 5, time.Minute))
}

func TestLoginLimiterWithoutRedis(t *testing.T) {
	limiter := NewLoginLimiter(nil)

	allowed, err := limiter.Bucket().Allow(context.Background(), "login:1.2.3.4")
	assert.NoError(t, err)
	assert.True(t, allowed)
}
