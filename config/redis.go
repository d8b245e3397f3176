package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance; nil when REDIS_ADDR is unset
// or the server did not answer a ping.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       getEnvInt("REDIS_DB", 0),
	})
}

// PingRedis disables RedisClient when the server is unreachable and reports
// whether Redis is usable.
func PingRedis(ctx context.Context) bool {
	if RedisClient == nil {
		return false
	}
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		RedisClient = nil
		return false
	}
	return true
}
