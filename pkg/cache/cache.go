package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kforum/moderation/pkg/common"
)

const (
	PublishedPostsKeyPattern = "posts:published:%s:%d:%d"
	ReviewQueueKeyPattern    = "posts:review:%d:%d"
	PostKeyPattern           = "post:%s"

	publishedPostsGlob = "posts:published:*"
	reviewQueueGlob    = "posts:review:*"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient dials redis with the given settings. The client is injected
// into NewCache so tests can substitute a mock.
func NewClient(config common.CacheConfig) *redis.Client {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}
	return redis.NewClient(options)
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		ttl:    common.PostListCacheTTL,
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// InvalidateListings drops every cached post listing. Called on any state
// transition so a held post never lingers in a cached published page.
func (c *Cache) InvalidateListings(ctx context.Context) error {
	for _, glob := range []string{publishedPostsGlob, reviewQueueGlob} {
		iter := c.client.Scan(ctx, 0, glob, 100).Iterator()
		for iter.Next(ctx) {
			if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
