// Package redis wraps go-redis for the shared-state needs of the service
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the interface for Redis operations
type RedisClient interface {
	// Eval runs a Lua script atomically on the server
	Eval(ctx context.Context, script string, keys []string, args ...any) (any, error)
	// EvalInt runs a Lua script whose reply is an integer
	EvalInt(ctx context.Context, script string, keys []string, args ...any) (int64, error)
	Ping(ctx context.Context) error
	Close() error
	GetClient() redis.UniversalClient
	Addrs() []string
}

// Option is a function that configures a Client
type Option func(*Client)

// Client represents a Redis client wrapper
type Client struct {
	opts   *redis.UniversalOptions
	client redis.UniversalClient
}

// New creates a new Redis client with the provided options and verifies the connection
func New(opts ...Option) (RedisClient, error) {
	client := &Client{
		opts: &redis.UniversalOptions{
			Addrs:        []string{"localhost:6379"},
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	client.client = redis.NewUniversalClient(client.opts)

	ctx, cancel := context.WithTimeout(context.Background(), client.opts.DialTimeout)
	defer cancel()

	if err := client.client.Ping(ctx).Err(); err != nil {
		_ = client.client.Close()
		return nil, err
	}

	return client, nil
}

// NewWithConfig creates a new Redis client from a config struct
func NewWithConfig(config Config) (RedisClient, error) {
	opts := []Option{
		WithAddrs(config.Addrs),
		WithUsername(config.Username),
		WithPassword(config.Password),
		WithDB(config.DB),
	}
	if config.DialTimeout > 0 {
		opts = append(opts, WithDialTimeout(config.DialTimeout))
	}
	if config.ReadTimeout > 0 {
		opts = append(opts, WithReadTimeout(config.ReadTimeout))
	}
	if config.WriteTimeout > 0 {
		opts = append(opts, WithWriteTimeout(config.WriteTimeout))
	}
	if config.PoolSize > 0 {
		opts = append(opts, WithPoolSize(config.PoolSize))
	}

	return New(opts...)
}

// NewFromClient wraps an existing go-redis client without dialing
func NewFromClient(client redis.UniversalClient) RedisClient {
	return &Client{
		opts:   &redis.UniversalOptions{},
		client: client,
	}
}

// Eval runs a Lua script atomically on the server
func (r *Client) Eval(ctx context.Context, script string, keys []string, args ...any) (any, error) {
	return r.client.Eval(ctx, script, keys, args...).Result()
}

// EvalInt runs a Lua script whose reply is an integer
func (r *Client) EvalInt(ctx context.Context, script string, keys []string, args ...any) (int64, error) {
	return r.client.Eval(ctx, script, keys, args...).Int64()
}

// Ping checks the connection to the server
func (r *Client) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (r *Client) Close() error {
	return r.client.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (r *Client) GetClient() redis.UniversalClient {
	return r.client
}

// Addrs returns the Redis server addresses
func (r *Client) Addrs() []string {
	return r.opts.Addrs
}
