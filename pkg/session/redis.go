package session

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vango-dev/multislider/internal/config"
)

// DefaultRedisPrefix namespaces snapshot keys.
const DefaultRedisPrefix = "multislider:session:"

// RedisStore keeps snapshots in Redis with the key expiry set from
// expiresAt, so entries vanish without a cleanup loop.
type RedisStore struct {
	client *redis.Client
	prefix string
	closed atomic.Bool
}

// NewRedisStore dials the configured server. The connection is lazy;
// use Ping to check it.
func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisStoreFromClient(client, cfg.Prefix)
}

// NewRedisStoreFromClient wraps an existing client. The store owns it
// and closes it on Close.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

// Ping checks that the server is reachable.
func (r *RedisStore) Ping(ctx context.Context) error {
	if r.closed.Load() {
		return ErrStoreClosed{}
	}
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error {
	if r.closed.Load() {
		return ErrStoreClosed{}
	}
	var ttl time.Duration
	if !expiresAt.IsZero() {
		ttl = time.Until(expiresAt)
		if ttl <= 0 {
			return r.Delete(ctx, id)
		}
	}
	if err := r.client.Set(ctx, r.key(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, id string) ([]byte, error) {
	if r.closed.Load() {
		return nil, ErrStoreClosed{}
	}
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return data, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if r.closed.Load() {
		return ErrStoreClosed{}
	}
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.client.Close()
}
