package storage

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

func NewRedis(host string, port int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %v", err)
	}

	return client, nil
}

// Cache is a small string cache on top of redis. A miss is reported as an
// empty value, not an error.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) Cache {
	return Cache{client: client}
}

func (c Cache) Get(key string) (string, error) {
	value, err := c.client.Get(key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}

func (c Cache) Set(key, value string, expiration time.Duration) error {
	return c.client.Set(key, value, expiration).Err()
}

func (c Cache) Del(keys ...string) error {
	return c.client.Del(keys...).Err()
}
