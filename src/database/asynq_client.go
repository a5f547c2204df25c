package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq initializes Asynq client only if Redis is available
func InitAsynq(redisURI string) *asynq.Client {
	// RedisClient != nil means InitRedis was successful
	if RedisClient == nil || redisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: redisURI})
	log.Println("✅ Asynq Client initialized successfully")
	return AsynqClient
}
