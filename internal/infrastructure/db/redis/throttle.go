package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	throttlePrefix = "login_fail:"

	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per email with a sliding expiry.
// Once the budget is exhausted the account stays locked until the window
// elapses without further failures.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{
		client:      client,
		maxAttempts: defaultMaxAttempts,
		window:      defaultWindow,
	}
}

func (t *LoginThrottle) TooMany(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := t.client.Get(ctx, throttlePrefix+email).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle get: %w", err)
	}
	return n >= t.maxAttempts, nil
}

func (t *LoginThrottle) Fail(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	key := throttlePrefix + email
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	return nil
}

func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := t.client.Del(ctx, throttlePrefix+email).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}
