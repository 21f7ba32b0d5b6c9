package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/northstar/goals-api/internal/core/domain"
)

const (
	maxFailures   = 10
	failureWindow = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_fail:<email>, expiring after failureWindow.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// Allow reports whether another login attempt for email is permitted.
func (t *LoginThrottle) Allow(ctx context.Context, email string) error {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("throttle check: %w", err)
	}
	if n >= maxFailures {
		return domain.ErrTooManyAttempts
	}
	return nil
}

// RecordFailure increments the failure counter, starting the expiry window on
// the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, failureWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_fail:" + email
}
