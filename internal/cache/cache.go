// Package cache stages short-lived values in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// Entry is one key and its raw value.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the key-value surface the services depend on.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]Entry, error)
	Ping(ctx context.Context) error
}

type RedisStore struct {
	client    redis.UniversalClient
	scanCount int64
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, scanCount: 100}
}

// Dial connects to a single Redis node.
func Dial(addr, password string, db int) *RedisStore {
	return NewRedisStore(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("getting %s: %w", key, err)
	}
	return b, nil
}

// Scan returns every live entry whose key matches the glob pattern, sorted by key.
func (s *RedisStore) Scan(ctx context.Context, pattern string) ([]Entry, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, s.scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("reading %d keys: %w", len(keys), err)
	}

	entries := make([]Entry, 0, len(keys))
	for i, v := range values {
		// keys can expire between SCAN and MGET
		str, ok := v.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: keys[i], Value: []byte(str)})
	}
	return entries, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
