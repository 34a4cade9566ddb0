package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient narrows what NewRedisClient needs so tests can stub the
// constructor.
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient connects to Redis and verifies the connection with a short
// Ping before returning.
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
