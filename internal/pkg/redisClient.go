package client

import (
	"context"
	"log"
	"time"

	"persona-engine/internal/config"

	"github.com/redis/go-redis/v9"
)

func RedisClient() *redis.Client {
	addr := config.MustGetEnv("REDIS_ADDR")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetEnv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("error verifying Redis connection: %v", err)
	}

	return redisClient
}
