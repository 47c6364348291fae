package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ashrofu/kssm-hub/internal/platform/cache"
)

// progressKeyPrefix is the fixed storage key the progress record lives under.
const progressKeyPrefix = "kssmQuizProgress"

// RedisStore is a Redis-backed ProgressStore. Each player's progress is a
// single JSON value under kssmQuizProgress:<user>.
type RedisStore struct {
	cache *cache.Cache
}

// NewRedisStore creates a Redis-backed progress store.
func NewRedisStore(c *cache.Cache) *RedisStore {
	return &RedisStore{cache: c}
}

func progressKey(user string) string {
	return progressKeyPrefix + ":" + user
}

func (s *RedisStore) Load(ctx context.Context, user string) (Progress, error) {
	data, err := s.cache.Client.Get(ctx, progressKey(user)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewProgress(), nil
		}
		return NewProgress(), fmt.Errorf("loading progress: %w", err)
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		// A corrupt record is equivalent to no record.
		slog.Warn("discarding malformed progress record", "user", user, "error", err)
		return NewProgress(), nil
	}
	p.normalize()
	return p, nil
}

func (s *RedisStore) Save(ctx context.Context, user string, p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	if err := s.cache.Client.Set(ctx, progressKey(user), data, 0).Err(); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, user string) error {
	if err := s.cache.Client.Del(ctx, progressKey(user)).Err(); err != nil {
		return fmt.Errorf("deleting progress: %w", err)
	}
	return nil
}
