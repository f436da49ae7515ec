package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

const (
	feedKey = "feed:accepted"
	feedTTL = 30 * time.Second
)

// FeedCache caches the accepted-post feed in Redis. It is strictly
// best-effort: any Redis failure degrades to a cache miss and the caller
// falls back to the store.
type FeedCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewFeedCache(client *redis.Client, log zerolog.Logger) *FeedCache {
	return &FeedCache{client: client, log: log}
}

// Get returns the cached feed and whether it was present.
func (c *FeedCache) Get(ctx context.Context) ([]*domain.Post, bool) {
	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("feed cache read failed")
		}
		return nil, false
	}

	var posts []*domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		c.log.Warn().Err(err).Msg("feed cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return posts, true
}

// Set stores the feed with a short TTL.
func (c *FeedCache) Set(ctx context.Context, posts []*domain.Post) {
	raw, err := json.Marshal(posts)
	if err != nil {
		c.log.Warn().Err(err).Msg("feed cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, feedKey, raw, feedTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("feed cache write failed")
	}
}

// Invalidate drops the cached feed. Called after every post mutation.
func (c *FeedCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, feedKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("feed cache invalidation failed")
	}
}
