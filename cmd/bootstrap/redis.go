package bootstrap

import (
	"context"

	"leave-ledger-api/internal/handler"
	"leave-ledger-api/internal/handler/middleware"
	"leave-ledger-api/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewIdempotencyMiddleware,
	),
)

// NewIdempotencyMiddleware returns nil when no Redis address is configured;
// the router then registers the apply route without duplicate protection.
func NewIdempotencyMiddleware(lc fx.Lifecycle, cfg config.Config) handler.IdempotencyMiddleware {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return handler.IdempotencyMiddleware(middleware.Idempotency(client, cfg.Redis.TTL))
}
