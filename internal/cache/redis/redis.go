package redis

import (
	"context"
	"time"

	"github.com/JMURv/pairlink/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Cache struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Cache {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Password,
		},
	)

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

// GetToStruct loads the value under key into dest. Any failure, miss or
// corrupt entry included, is reported as an error so callers fall back
// to the repository.
func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	val, err := c.cli.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Error(
				"Failed to read cache entry",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return err
	}

	if err = json.Unmarshal(val, dest); err != nil {
		return err
	}
	return nil
}

// GetString returns the bare scalar stored under key.
func (c *Cache) GetString(ctx context.Context, key string) (string, error) {
	val, err := c.cli.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		zap.L().Error(
			"Failed to read cache entry",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return val, err
}

// Set stores val under key with the given TTL. Cache writes are
// best-effort: failures are logged and swallowed.
func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) {
	if err := c.cli.Set(ctx, key, val, t).Err(); err != nil {
		zap.L().Error(
			"Failed to set cache entry",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Error(
			"Failed to delete cache entry",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (c *Cache) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	iter := c.cli.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.cli.Del(ctx, iter.Val()).Err(); err != nil {
			zap.L().Error(
				"Failed to delete cache entry",
				zap.String("key", iter.Val()),
				zap.Error(err),
			)
		}
	}

	if err := iter.Err(); err != nil {
		zap.L().Error(
			"Failed to scan keys",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
	}
}
