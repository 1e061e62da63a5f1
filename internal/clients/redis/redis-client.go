package redis_client

import (
	"context"

	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// New returns nil when redis is not configured.
func New(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	var c = cfg.Infrastructure.Redis
	if c.Address == "" {
		return nil
	}

	var client = redis.NewClient(&redis.Options{
		Addr:     c.Address,
		Password: c.Password,
		DB:       c.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}
