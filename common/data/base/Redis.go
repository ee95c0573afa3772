package base

import (
	"time"

	"github.com/go-redis/redis"
)

type Redis struct {
	client     *redis.Client
	expiration time.Duration
}

func (r *Redis) Get(key string) (string, error) {
	v, err := r.client.Get(key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	return v, err
}

func (r *Redis) Set(key, value string) error {
	return r.client.Set(key, value, r.expiration).Err()
}

func NewRedis(address, password string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       0,
	})

	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Redis{client: client, expiration: ttl}, nil
}
