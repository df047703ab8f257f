package database

import (
	"context"
	"log"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/config"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, upstream response caching disabled")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Upstream response caching will be disabled.", err)
		Redis = nil
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// CacheSet stores a JSON-serialized value. No-op when Redis is unavailable.
func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, expiration).Err()
}

// CacheGet loads a JSON-serialized value into dest. Returns redis.Nil on
// miss, and an error when Redis is unavailable so callers fall through to
// the live fetch.
func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return redis.Nil
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}
