package database

import (
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/sentry/tracing"
)

var Redis *redis.Client

// OpenRedis Host 为空时返回 nil, nil，调用方退回内存实现
func OpenRedis(ctx context.Context, c config.Redis) (*redis.Client, error) {
	if c.Host == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(c.Host, c.Port),
		Password: c.Password,
		DB:       c.DB,
	})
	if tracing.IsEnabled() {
		client.AddHook(tracing.NewRedisHook())
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	Redis = client
	return client, nil
}
