package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Gallery listings churn with every vote so they stay short.
const (
	GalleryCacheTTL = 60 * time.Second
	PostCacheTTL    = 5 * time.Minute
)

// CacheService provides a Redis cache-aside layer for gallery and post
// lookups.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and all
// cache operations become no-ops.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetGallery retrieves a cached gallery listing for a tab/filter combination.
// Returns nil if not cached or cache is disabled.
func (c *CacheService) GetGallery(ctx context.Context, tab, voice, template string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, galleryKey(tab, voice, template)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetGallery stores a gallery listing in cache.
func (c *CacheService) SetGallery(ctx context.Context, tab, voice, template string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, galleryKey(tab, voice, template), b, GalleryCacheTTL).Err()
}

// InvalidateGallery removes all gallery listings from cache (called after
// publishes, votes and moderation actions).
func (c *CacheService) InvalidateGallery(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, "gallery:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// GetPost retrieves a cached post response. Returns nil if not cached.
func (c *CacheService) GetPost(ctx context.Context, postID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, postKey(postID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetPost stores a post response in cache.
func (c *CacheService) SetPost(ctx context.Context, postID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, postKey(postID), b, PostCacheTTL).Err()
}

// InvalidatePost removes a post from cache (called after vote changes and
// moderation actions).
func (c *CacheService) InvalidatePost(ctx context.Context, postID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, postKey(postID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func galleryKey(tab, voice, template string) string {
	return fmt.Sprintf("gallery:%s:%s:%s", tab, voice, template)
}

func postKey(postID string) string {
	return fmt.Sprintf("post:%s", postID)
}
