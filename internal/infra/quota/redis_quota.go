// Package quota implements the daily like quota counters on Redis.
package quota

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flint/config"
	"flint/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// redisQuota implements the service.LikeQuota interface on Redis counters.
// One key per user per UTC day; the TTL keeps stale days from piling up.
type redisQuota struct {
	client *redis.Client
}

// Params holds dependencies for the quota backend, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the quota backend, or nothing when Redis is not configured.
// Use cases treat a missing backend as "quota disabled".
func New(params Params) (service.LikeQuota, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, like quota disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisQuota(client), nil
}

// NewRedisQuota wraps an existing Redis client as a LikeQuota.
func NewRedisQuota(client *redis.Client) service.LikeQuota {
	return &redisQuota{client: client}
}

func quotaKey(userID, dayKey string) string {
	return fmt.Sprintf("quota:like:%s:%s", userID, dayKey)
}

// Used returns the number of likes consumed for the day key.
func (q *redisQuota) Used(ctx context.Context, userID, dayKey string) (int, error) {
	used, err := q.client.Get(ctx, quotaKey(userID, dayKey)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read quota counter")
	}

	return used, nil
}

// Increment adds delta to the day counter and returns the new value. The
// expiry is refreshed on every increment; the counter only needs to outlive
// its own day.
func (q *redisQuota) Increment(ctx context.Context, userID, dayKey string, delta int, ttl time.Duration) (int, error) {
	key := quotaKey(userID, dayKey)

	pipe := q.client.TxPipeline()
	incr := pipe.IncrBy(ctx, key, int64(delta))
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Wrap(err, "failed to increment quota counter")
	}

	return int(incr.Val()), nil
}
