package myredis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const defaultConnectTimeout = 5 * time.Second

// RedisConfig selects the Redis memo cache.
//
// Prefix must be unique per process sharing the Redis: a process clears its whole prefix when it installs
// a new directory snapshot, so two processes on one prefix would wipe each other's entries.
type RedisConfig struct {
	// Addr is a redis:// or rediss:// URL. Empty means no Redis.
	Addr   string
	Prefix string
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Connect builds a client for c.Addr and pings it, waiting at most 5s. The caller closes the client.
func (c RedisConfig) Connect(ctx context.Context, options ...ConfigOption) (redis.UniversalClient, error) {
	if c.Prefix == "" {
		return nil, fmt.Errorf("redis prefix is required")
	}
	client, err := NewRedisUniversalClient(c.Addr, options...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("can't connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisUniversalClient creates a redis universal client from a redis URL.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(universalOptions(redisOptions)), nil
}

// ConfigOption tweaks the parsed options before the client is built.
type ConfigOption func(*redis.Options)

// WithTimeouts sets dial, read and write timeouts to d.
func WithTimeouts(d time.Duration) ConfigOption {
	return func(o *redis.Options) {
		o.DialTimeout = d
		o.ReadTimeout = d
		o.WriteTimeout = d
	}
}

// universalOptions keeps what a redis URL can carry plus the timeouts and pool settings.
func universalOptions(o *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:        []string{o.Addr},
		DB:           o.DB,
		Username:     o.Username,
		Password:     o.Password,
		TLSConfig:    o.TLSConfig,
		DialTimeout:  o.DialTimeout,
		ReadTimeout:  o.ReadTimeout,
		WriteTimeout: o.WriteTimeout,
		MaxRetries:   o.MaxRetries,
		PoolSize:     o.PoolSize,
		PoolTimeout:  o.PoolTimeout,
		MinIdleConns: o.MinIdleConns,
		IdleTimeout:  o.IdleTimeout,
	}
}
