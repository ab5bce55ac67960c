package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is an optional read cache in front of the file store. It fails
// safe: when redis is unconfigured or unreachable every operation
// behaves like a miss, so the file remains the source of truth.
type Client struct {
	client *redis.Client
}

// New creates a cache client. An empty addr disables caching entirely.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return &Client{}
	}
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached value, or nil on miss or redis failure.
func (c *Client) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

// Set stores value with a TTL, ignoring redis failures.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key, ignoring redis failures.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, key).Err()
}
