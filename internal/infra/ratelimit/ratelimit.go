// Package ratelimit implements fixed-window attempt counters, in redis when
// configured and in process memory otherwise.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guestpass/config"
	"guestpass/internal/domain/constants"
	"guestpass/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultRequests = 10
	defaultWindow   = time.Minute
)

type redisLimiter struct {
	client   *redis.Client
	requests int64
	window   time.Duration
}

// NewRedis counts attempts with INCR on a key that expires with the window.
func NewRedis(client *redis.Client, requests int, window time.Duration) service.RateLimiter {
	return &redisLimiter{client: client, requests: int64(requests), window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := constants.RateLimitKeyPrefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)
	ttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, 0, errors.Wrap(err, "rate limit pipeline failed")
	}

	if incr.Val() <= l.requests {
		return true, 0, nil
	}

	retryAfter := ttl.Val()
	if retryAfter <= 0 {
		retryAfter = l.window
	}

	return false, retryAfter, nil
}

type counter struct {
	count   int
	resetAt time.Time
}

type memoryLimiter struct {
	mu       sync.Mutex
	requests int
	window   time.Duration
	buckets  map[string]*counter
	now      func() time.Time
}

// NewInMemory keeps counters in a map; suitable for a single instance.
func NewInMemory(requests int, window time.Duration) service.RateLimiter {
	return &memoryLimiter{
		requests: requests,
		window:   window,
		buckets:  make(map[string]*counter),
		now:      time.Now,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictExpired(now)

	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &counter{resetAt: now.Add(l.window)}
		l.buckets[key] = bucket
	}

	bucket.count++
	if bucket.count <= l.requests {
		return true, 0, nil
	}

	return false, bucket.resetAt.Sub(now), nil
}

func (l *memoryLimiter) evictExpired(now time.Time) {
	for key, bucket := range l.buckets {
		if !now.Before(bucket.resetAt) {
			delete(l.buckets, key)
		}
	}
}

type disabledLimiter struct{}

func (disabledLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}

// LimiterParams holds dependencies for the RateLimiter, injected by Fx
type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter picks the limiter backend from the rateLimit section.
func NewRateLimiter(params LimiterParams) service.RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return disabledLimiter{}
	}

	requests, win := cfg.Requests, cfg.Window
	if requests <= 0 {
		requests = defaultRequests
	}
	if win <= 0 {
		win = defaultWindow
	}

	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		params.Logger.Info("Rate limiting in memory",
			slog.Int("requests", requests),
			slog.Duration("window", win),
		)

		return NewInMemory(requests, win)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// counters fail open until redis becomes reachable
				params.Logger.Warn("Redis unreachable at startup", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Rate limiting in redis",
		slog.String("addr", cfg.Redis.Addr),
		slog.Int("requests", requests),
		slog.Duration("window", win),
	)

	return NewRedis(client, requests, win)
}

// Module provides the rate limiter FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRateLimiter),
)
