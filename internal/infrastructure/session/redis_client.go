package session

import (
	"context"

	"github.com/redis/go-redis/v9"

	"smartethnic/pkg/logger"
)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Error("Redis connection failed: address=%s, error=%v", addr, err)
		return nil, err
	}

	logger.Info("Redis connection successful: address=%s", addr)
	return rdb, nil
}
