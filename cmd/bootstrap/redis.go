package bootstrap

import (
	"context"

	"salonbook/internal/infra/cache"
	"salonbook/internal/pkg/config"
	"salonbook/internal/usecase/queries"
	"salonbook/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRatingStatsCache,
	),
)

// NewRatingStatsCache wires the Redis-backed cache when enabled and a no-op
// fallback otherwise, so the rest of the graph never branches on config.
func NewRatingStatsCache(lc fx.Lifecycle, cfg config.Config) (queries.RatingStatsCache, shared.RatingCacheInvalidator) {
	if !cfg.Redis.Enabled {
		noop := cache.NewNoopRatingStatsCache()
		return noop, noop
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	c := cache.NewRatingStatsCache(client, cfg.Redis.StatsTTL)
	return c, c
}
