package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository keeps values in Redis under a common prefix
type RedisRepository struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisRepository stores keys as prefix+key; ttl 0 keeps them forever
func NewRedisRepository(rdb *redis.Client, prefix string, ttl time.Duration) *RedisRepository {
	return &RedisRepository{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisRepository) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, r.prefix+key, value, r.ttl).Err()
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}

// Keys scans for keys starting with prefix, returned without the repository
// prefix and sorted.
func (r *RedisRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, r.prefix+prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
