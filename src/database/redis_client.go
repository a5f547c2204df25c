package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis เชื่อมต่อ Redis; ไม่มี REDIS_URI = ทำงานแบบไม่มี cache/queue
func InitRedis(redisURI string) (*redis.Client, error) {
	if redisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Report cache and export queue disabled.")
		return nil, nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisURI, // เช่น localhost:6379
		Password: "",       // ถ้าไม่มีรหัสผ่าน
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		RedisClient = nil
		return nil, fmt.Errorf("failed to connect Redis: %w", err)
	}
	log.Println("✅ Redis connected successfully")
	return RedisClient, nil
}
