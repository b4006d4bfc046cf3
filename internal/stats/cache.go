package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

const defaultCacheTTL = 5 * time.Minute

// Cache provides Redis-backed quiz statistics caching so the history screens
// do not re-aggregate results on every load.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ StatsCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(quizID uuid.UUID) string {
	return "quizstats:" + quizID.String()
}

func (c *Cache) Get(ctx context.Context, quizID uuid.UUID) (*quiz.QuizStats, error) {
	data, err := c.client.Get(ctx, c.key(quizID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var stats quiz.QuizStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Cache) Set(ctx context.Context, quizID uuid.UUID, stats quiz.QuizStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(quizID), data, c.ttl).Err()
}

// Invalidate drops the cached entry after a new result is recorded.
func (c *Cache) Invalidate(ctx context.Context, quizID uuid.UUID) error {
	return c.client.Del(ctx, c.key(quizID)).Err()
}
