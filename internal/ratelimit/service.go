package ratelimit

import (
	"context"
	"fmt"
	"time"

	"uplinepay/internal/clients/redis"
	"uplinepay/internal/observability"

	redislib "github.com/redis/go-redis/v9"
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service implements sliding-window rate limiting over Redis sorted
// sets. When Redis is unavailable the check fails open: activation
// and withdrawal correctness never depends on the limiter.
type Service struct {
	redis  *redis.Client
	limit  int
	logger *observability.Logger
}

// NewService creates a new rate limiting service
func NewService(redis *redis.Client, requestsPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  requestsPerMinute,
		logger: logger,
	}
}

// Check records one request for the caller and reports whether it is
// within the per-minute limit.
func (s *Service) Check(ctx context.Context, callerKey string) (Result, error) {
	if !s.redis.IsEnabled() {
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit}, nil
	}

	key := fmt.Sprintf("rl:%s", callerKey)
	now := time.Now()
	windowStartMs := now.Add(-1 * time.Minute).UnixMilli()
	client := s.redis.GetClient()

	err := client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs)).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := client.ZCard(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		retryAfterMs := 60000
		resetAt := now.Add(1 * time.Minute)
		oldest, err := client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err == nil && len(oldest) > 0 {
			oldestMs := int64(oldest[0].Score)
			resetAt = time.UnixMilli(oldestMs).Add(1 * time.Minute)
			if ms := resetAt.Sub(now).Milliseconds(); ms > 0 {
				retryAfterMs = int(ms)
			}
		}
		return Result{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: retryAfterMs,
		}, nil
	}

	nowMs := now.UnixMilli()
	err = client.ZAdd(ctx, key, redislib.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d", nowMs),
	}).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}
	// Keep the key from leaking if the caller goes quiet.
	client.Expire(ctx, key, 2*time.Minute)

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(1 * time.Minute),
	}, nil
}
