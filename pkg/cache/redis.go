// Package cache wires up the Redis client backing the homepage
// configuration cache.
package cache

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edudham/edudham-api/pkg/config"
)

const pingTimeout = 5 * time.Second

// NewRedis connects and pings the configured Redis instance. The server
// treats a failure here as a degradation, not a fatal error; callers
// may run with a nil client.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
