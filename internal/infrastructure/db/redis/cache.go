package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lecturehall/lecture-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// LectureCache is a read-through cache for lecture detail lookups.
// Key format: lecture:<id>
//
// The cache is strictly best-effort: any Redis failure is logged and treated
// as a miss, never surfaced to the request.
type LectureCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewLectureCache creates a LectureCache wrapping the given Redis client.
func NewLectureCache(client *redis.Client, log zerolog.Logger) *LectureCache {
	return &LectureCache{client: client, log: log}
}

func (c *LectureCache) Get(ctx context.Context, id string) (*domain.Lecture, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("lecture_id", id).Msg("cache read failed")
		}
		return nil, false
	}

	var lecture domain.Lecture
	if err := json.Unmarshal(data, &lecture); err != nil {
		c.log.Warn().Err(err).Str("lecture_id", id).Msg("cache entry corrupt, dropping")
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, false
	}
	return &lecture, true
}

func (c *LectureCache) Set(ctx context.Context, lecture *domain.Lecture) {
	data, err := json.Marshal(lecture)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(lecture.ID), data, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("lecture_id", lecture.ID).Msg("cache write failed")
	}
}

func (c *LectureCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("lecture_id", id).Msg("cache invalidation failed")
	}
}

func (c *LectureCache) key(id string) string {
	return "lecture:" + id
}
