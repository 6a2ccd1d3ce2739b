package cache

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"hubmark/config"
	"hubmark/internal/domain/lifecycle"
	"hubmark/internal/domain/service"
)

// Cache provider names accepted in configuration.
const (
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

// Params holds dependencies for the bookmark cache, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBookmarkCache creates a BookmarkCache based on configuration.
func NewBookmarkCache(params Params) (service.BookmarkCache, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	switch cfg.Provider {
	case ProviderMemory:
		logger.Info("Using in-memory bookmark cache",
			slog.Int("maxEntries", cfg.MaxEntries),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewMemoryCache(cfg.MaxEntries, cfg.TTL), nil

	case ProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis cache provider")
		}
		logger.Info("Using redis bookmark cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.Duration("ttl", cfg.TTL),
		)

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		// Verify the connection on startup and close the client on shutdown.
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				logger.Info("Closing redis bookmark cache client")

				return client.Close()
			},
		})

		return NewRedisCache(client, cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}
