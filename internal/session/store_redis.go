package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisNamespace = "quality_store:sessions:"
	redisTimeout   = 2 * time.Second
)

type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore connects to the Redis instance at url (redis://host:port/db).
func NewRedisStore(url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisStoreFromClient(redis.NewClient(opt)), nil
}

func NewRedisStoreFromClient(c *redis.Client) *RedisStore {
	return &RedisStore{client: c, now: time.Now}
}

func (s *RedisStore) Close() error { return s.client.Close() }

func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Record(ctx context.Context, rec Record) error {
	ttl := time.Duration(0)
	if !rec.ExpiresAt.IsZero() {
		ttl = rec.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	return s.client.Set(ctx, redisNamespace+key(rec.Role, rec.Subject), raw, ttl).Err()
}

func (s *RedisStore) Last(ctx context.Context, role, subject string) (Record, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	raw, err := s.client.Get(ctx, redisNamespace+key(role, subject)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, fmt.Errorf("decode session record: %w", err)
	}
	return rec, true, nil
}
