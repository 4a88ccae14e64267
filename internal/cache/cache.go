// Package cache keeps a short-lived Redis copy of the client list so the
// dashboard's read path does not hit the store on every refresh. Cache
// problems are logged and treated as misses; they never fail a request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"client-hub/internal/config"
	"client-hub/internal/domain/client"

	"github.com/redis/go-redis/v9"
)

const (
	clientListKey = "clients:all"

	connectTimeout = 5 * time.Second
	opTimeout      = 2 * time.Second

	errFailedConnectRedisFmt = "failed to connect to Redis: %w"

	logGetFailedFmt        = "Failed to read client list from cache: %v"
	logSetFailedFmt        = "Failed to cache client list: %v"
	logInvalidateFailedFmt = "Failed to invalidate client list cache: %v"
)

type ClientListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg config.CacheConfig) (*ClientListCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf(errFailedConnectRedisFmt, err)
	}

	return &ClientListCache{client: rdb, ttl: cfg.TTL}, nil
}

// Get returns the cached list and whether it was present.
func (c *ClientListCache) Get(ctx context.Context) ([]*client.Client, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, clientListKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf(logGetFailedFmt, err)
		}
		return nil, false
	}

	var clients []*client.Client
	if err := json.Unmarshal([]byte(raw), &clients); err != nil {
		log.Printf(logGetFailedFmt, err)
		return nil, false
	}

	return clients, true
}

func (c *ClientListCache) Set(ctx context.Context, clients []*client.Client) {
	raw, err := json.Marshal(clients)
	if err != nil {
		log.Printf(logSetFailedFmt, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, clientListKey, raw, c.ttl).Err(); err != nil {
		log.Printf(logSetFailedFmt, err)
	}
}

// Invalidate drops the cached list after any write.
func (c *ClientListCache) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.client.Del(ctx, clientListKey).Err(); err != nil {
		log.Printf(logInvalidateFailedFmt, err)
	}
}

func (c *ClientListCache) Close() error {
	return c.client.Close()
}
