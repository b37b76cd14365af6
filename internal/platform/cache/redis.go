package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/upmkt/affiliates-api/pkg/config"
)

// Client wraps redis for small lookaside caches (role lookups). All methods
// are safe on a nil receiver so the app runs without redis configured; the
// database stays authoritative either way.
type Client struct {
	rdb *redis.Client
}

func New(lc fx.Lifecycle, l *zap.SugaredLogger, cfg *cfgpkg.Config) *Client {
	if cfg.Redis.Addr == "" {
		l.Infow("redis not configured, role cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		l.Warnw("redis unreachable, role cache disabled", "err", err)
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	l.Infow("connected to redis", "addr", cfg.Redis.Addr)
	return &Client{rdb: rdb}
}

func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	_ = c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

var Module = fx.Options(
	fx.Provide(New),
)
