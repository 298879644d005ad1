package ratelimit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/project_finance_app/internal/platform/config"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const storePrefix = "pfa_limiter"

// NewLimiter builds the per-IP limiter. When a Redis address is configured the
// counters live in Redis so that every replica shares them; otherwise they are
// kept in process memory. The returned close func releases the Redis client.
func NewLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*limiter.Limiter, func() error, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	if cfg.RedisAddr == "" {
		logger.Info("Rate limiter using in-memory store", slog.String("rate", cfg.RateLimit))
		store := memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: storePrefix})
		return limiter.New(store, rate), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: storePrefix})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	logger.Info("Rate limiter using redis store", slog.String("addr", cfg.RedisAddr), slog.String("rate", cfg.RateLimit))
	return limiter.New(store, rate), client.Close, nil
}
