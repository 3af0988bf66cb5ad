package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix matches the key names the dashboard used in local storage.
const redisKeyPrefix = "dashboard-"

// redisTimeout bounds each round trip; store calls are synchronous.
const redisTimeout = 5 * time.Second

// redisBackend stores each collection document under dashboard-<name>.
type redisBackend struct {
	client *redis.Client
}

func newRedisBackend(addr string, db int) (*redisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &redisBackend{client: client}, nil
}

func (r *redisBackend) get(name string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *redisBackend) put(name string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return r.client.Set(ctx, redisKeyPrefix+name, data, 0).Err()
}

func (r *redisBackend) close() error {
	return r.client.Close()
}
