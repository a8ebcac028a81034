package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"torneos/config"
)

type Cache struct {
	Client *redis.Client
}

func NewCache(cfg config.CacheConfig) (*Cache, error) {
	redisPassword := os.Getenv("REDIS_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		DB:       cfg.Db,
		Password: redisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if redisPassword != "" {
			return nil, fmt.Errorf("failed to connect to Redis at %s (with password): %w", cfg.Address, err)
		}
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	return &Cache{Client: client}, nil
}

func (c *Cache) Close() error {
	return c.Client.Close()
}
