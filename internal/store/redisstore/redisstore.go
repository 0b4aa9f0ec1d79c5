// Package redisstore keeps the rule document in a redis key.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/acpilot/acpilot/internal/store"
	"github.com/redis/go-redis/v9"
)

// DefaultKey is the redis key used when none is configured.
const DefaultKey = "acpilot:rules"

// Client is the subset of the redis client that RedisStore uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

var _ store.Backend = &RedisStore{}

type RedisStore struct {
	Client Client
	Key    string
}

// New returns a RedisStore for the redis server at addr.
func New(addr string, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		Key:    key,
	}
}

func (r RedisStore) Load(ctx context.Context) ([]byte, error) {
	body, err := r.Client.Get(ctx, r.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNoDocument
	}
	return body, err
}

func (r RedisStore) Save(ctx context.Context, body []byte) error {
	return r.Client.Set(ctx, r.Key, body, 0).Err()
}
