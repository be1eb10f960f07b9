package markers

import (
	"context"
	"time"

	"github.com/planhive/gateway/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps markers as plain keys with a TTL, so stale markers expire
// without a sweeper.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(cfg *config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, userID, projectID uint) (bool, error) {
	n, err := s.client.Exists(ctx, Key(userID, projectID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Set(ctx context.Context, userID, projectID uint) error {
	return s.client.Set(ctx, Key(userID, projectID), "true", s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userID, projectID uint) error {
	return s.client.Del(ctx, Key(userID, projectID)).Err()
}

// Purge is a no-op: the TTL set on every key already bounds marker lifetime.
func (s *RedisStore) Purge(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
